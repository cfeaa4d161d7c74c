package ports

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Amund211/skillforge/internal/app"
	"github.com/Amund211/skillforge/internal/domain"
	"github.com/Amund211/skillforge/internal/logging"
	"github.com/Amund211/skillforge/internal/ratelimiting"
	"github.com/Amund211/skillforge/internal/reporting"
)

func parseLimit(r *http.Request, fallback int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: limit must be an integer", domain.ErrInvalidQuery)
	}
	if limit < 0 {
		return 0, fmt.Errorf("%w: limit must not be negative", domain.ErrInvalidQuery)
	}
	return limit, nil
}

func parseFlag(r *http.Request, name string) bool {
	return r.URL.Query().Get(name) == "true"
}

// buildAPIMiddleware is shared by every mock API endpoint
func buildAPIMiddleware(
	port string,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
	simulatedLatency time.Duration,
) func(http.HandlerFunc) http.HandlerFunc {
	ipLimiter, _ := ratelimiting.NewTokenBucketRateLimiter(
		ratelimiting.RefillPerSecond(10),
		ratelimiting.BurstSize(600),
	)
	ipRateLimiter := ratelimiting.NewRequestBasedRateLimiter(
		ipLimiter,
		ratelimiting.IPKeyFunc,
	)

	return ComposeMiddlewares(
		buildMetricsMiddleware(port),
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware(port),
		NewRateLimitMiddleware(ipRateLimiter),
		NewSimulatedLatencyMiddleware(simulatedLatency),
	)
}

// handleListError writes the error response for a failed listing of kind
func handleListError(ctx context.Context, w http.ResponseWriter, kind string, err error) {
	if errors.Is(err, domain.ErrInvalidQuery) {
		statusCode := http.StatusBadRequest
		logging.FromContext(ctx).InfoContext(ctx, "Invalid query. Returning error", "statusCode", statusCode, "reason", "invalid query", "error", err)
		writeError(ctx, w, statusCode, err.Error())
		return
	}

	logging.FromContext(ctx).ErrorContext(ctx, "Failed to list "+kind, "error", err)
	reporting.Report(ctx, fmt.Errorf("failed to list %s: %w", kind, err))
	writeError(ctx, w, http.StatusInternalServerError, "Failed to fetch "+kind)
}

func MakeListOffersHandler(
	listOffers app.ListOffers,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
	simulatedLatency time.Duration,
) http.HandlerFunc {
	middleware := buildAPIMiddleware("offers", rootLogger, sentryMiddleware, simulatedLatency)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		limit, err := parseLimit(r, app.DefaultOffersLimit)
		if err != nil {
			handleListError(ctx, w, "offers", err)
			return
		}
		activeOnly := parseFlag(r, "active")

		ctx = logging.AddMetaToContext(ctx, slog.Int("limit", limit), slog.Bool("activeOnly", activeOnly))

		page, err := listOffers(ctx, limit, activeOnly)
		if err != nil {
			handleListError(ctx, w, "offers", err)
			return
		}

		writeList(ctx, w, page.Items, page.Total, nil)
	}

	return middleware(handler)
}

func MakeListBannersHandler(
	listBanners app.ListBanners,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
	simulatedLatency time.Duration,
) http.HandlerFunc {
	middleware := buildAPIMiddleware("banners", rootLogger, sentryMiddleware, simulatedLatency)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		limit, err := parseLimit(r, app.DefaultBannersLimit)
		if err != nil {
			handleListError(ctx, w, "banners", err)
			return
		}
		activeOnly := parseFlag(r, "active")

		ctx = logging.AddMetaToContext(ctx, slog.Int("limit", limit), slog.Bool("activeOnly", activeOnly))

		page, err := listBanners(ctx, limit, activeOnly)
		if err != nil {
			handleListError(ctx, w, "banners", err)
			return
		}

		writeList(ctx, w, page.Items, page.Total, nil)
	}

	return middleware(handler)
}

func MakeListMiniOffersHandler(
	listMiniOffers app.ListMiniOffers,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
	simulatedLatency time.Duration,
) http.HandlerFunc {
	middleware := buildAPIMiddleware("mini-offers", rootLogger, sentryMiddleware, simulatedLatency)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		limit, err := parseLimit(r, app.DefaultMiniOffersLimit)
		if err != nil {
			handleListError(ctx, w, "mini offers", err)
			return
		}
		activeOnly := parseFlag(r, "active")

		ctx = logging.AddMetaToContext(ctx, slog.Int("limit", limit), slog.Bool("activeOnly", activeOnly))

		page, err := listMiniOffers(ctx, limit, activeOnly)
		if err != nil {
			handleListError(ctx, w, "mini offers", err)
			return
		}

		writeList(ctx, w, page.Items, page.Total, nil)
	}

	return middleware(handler)
}

func MakeListNotificationsHandler(
	listNotifications app.ListNotifications,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
	simulatedLatency time.Duration,
) http.HandlerFunc {
	middleware := buildAPIMiddleware("notifications", rootLogger, sentryMiddleware, simulatedLatency)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		limit, err := parseLimit(r, app.DefaultNotificationsLimit)
		if err != nil {
			handleListError(ctx, w, "notifications", err)
			return
		}
		activeOnly := parseFlag(r, "active")

		userType := domain.UserTypeAll
		if rawUserType := r.URL.Query().Get("userType"); rawUserType != "" {
			userType, err = domain.ParseUserType(rawUserType)
			if err != nil {
				handleListError(ctx, w, "notifications", err)
				return
			}
		}

		ctx = logging.AddMetaToContext(ctx,
			slog.Int("limit", limit),
			slog.Bool("activeOnly", activeOnly),
			slog.String("userType", string(userType)),
		)

		page, err := listNotifications(ctx, limit, userType, activeOnly)
		if err != nil {
			handleListError(ctx, w, "notifications", err)
			return
		}

		writeList(ctx, w, page.Items, page.Total, nil)
	}

	return middleware(handler)
}

func MakeListCoursesHandler(
	listCourses app.ListCourses,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
	simulatedLatency time.Duration,
) http.HandlerFunc {
	middleware := buildAPIMiddleware("courses", rootLogger, sentryMiddleware, simulatedLatency)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		limit, err := parseLimit(r, app.DefaultCoursesLimit)
		if err != nil {
			handleListError(ctx, w, "courses", err)
			return
		}

		query := domain.CourseQuery{
			Category:    r.URL.Query().Get("category"),
			Level:       r.URL.Query().Get("level"),
			PopularOnly: parseFlag(r, "popular"),
			NewOnly:     parseFlag(r, "new"),
			Limit:       limit,
		}

		ctx = logging.AddMetaToContext(ctx, slog.String("query", query.String()))

		page, err := listCourses(ctx, query)
		if err != nil {
			handleListError(ctx, w, "courses", err)
			return
		}

		categories := page.Categories
		if categories == nil {
			categories = []string{}
		}

		writeList(ctx, w, page.Items, page.Total, categories)
	}

	return middleware(handler)
}
