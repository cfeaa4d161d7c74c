package ports

import (
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Amund211/skillforge/internal/logging"
	"github.com/Amund211/skillforge/internal/reporting"
)

var placeholderColors = []string{
	"#3B82F6", // blue
	"#10B981", // emerald
	"#F59E0B", // amber
	"#EF4444", // red
	"#8B5CF6", // violet
	"#06B6D4", // cyan
}

const (
	placeholderWidth  = 400
	placeholderHeight = 250
)

func placeholderSVG(slug string) string {
	color := placeholderColors[len(slug)%len(placeholderColors)]
	text := strings.ToUpper(strings.ReplaceAll(slug, "-", " "))

	return fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
  <rect width="100%%" height="100%%" fill="%s"/>
  <text x="50%%" y="50%%" font-family="Arial, sans-serif" font-size="16" fill="white" text-anchor="middle" dominant-baseline="middle">%s</text>
</svg>
`, placeholderWidth, placeholderHeight, color, html.EscapeString(text))
}

// MakePlaceholderHandler serves a generated image for course artwork that does not exist yet.
// The route must capture the rest of the path as {slug...}.
func MakePlaceholderHandler(
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := ComposeMiddlewares(
		buildMetricsMiddleware("placeholder"),
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("placeholder"),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		slug := r.PathValue("slug")
		if slug == "" {
			slug = "default"
		}
		ctx = reporting.AddExtrasToContext(ctx, map[string]string{"slug": slug})

		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(placeholderSVG(slug))); err != nil {
			logging.FromContext(ctx).ErrorContext(ctx, "Failed to write placeholder", "error", err)
			reporting.Report(ctx, fmt.Errorf("failed to write placeholder: %w", err))
		}
	}

	return middleware(handler)
}
