package ports

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Amund211/skillforge/internal/app"
	"github.com/Amund211/skillforge/internal/domain"
	"github.com/Amund211/skillforge/internal/logging"
	"github.com/Amund211/skillforge/internal/ratelimiting"
	"github.com/Amund211/skillforge/internal/reporting"
)

type promotionsResponseObject struct {
	Success       bool                  `json:"success"`
	Offers        []domain.Offer        `json:"offers"`
	Banners       []domain.Banner       `json:"banners"`
	Notifications []domain.Notification `json:"notifications"`
	MiniOffers    []domain.MiniOffer    `json:"miniOffers"`
	Timestamp     string                `json:"timestamp"`
}

func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// MakeGetPromotionsHandler serves everything a page needs to render its promotions.
// Upstream failures only ever result in fewer promotions.
func MakeGetPromotionsHandler(
	getPromotions app.GetPromotions,
	allowedOrigins *AllowedOrigins,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	ipLimiter, _ := ratelimiting.NewTokenBucketRateLimiter(
		ratelimiting.RefillPerSecond(4),
		ratelimiting.BurstSize(240),
	)
	ipRateLimiter := ratelimiting.NewRequestBasedRateLimiter(
		ipLimiter,
		ratelimiting.IPKeyFunc,
	)
	userIDLimiter, _ := ratelimiting.NewTokenBucketRateLimiter(
		ratelimiting.RefillPerSecond(1),
		ratelimiting.BurstSize(60),
	)
	userIDRateLimiter := ratelimiting.NewRequestBasedRateLimiter(
		// NOTE: Rate limiting based on user controlled value
		userIDLimiter,
		ratelimiting.UserIDKeyFunc,
	)

	middleware := ComposeMiddlewares(
		buildMetricsMiddleware("promotions"),
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("promotions"),
		BuildCORSMiddleware(allowedOrigins),
		NewRateLimitMiddleware(ipRateLimiter),
		NewRateLimitMiddleware(userIDRateLimiter),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID := r.Header.Get("X-User-Id")
		if userID == "" {
			userID = "<missing>"
		}
		ctx = reporting.SetUserIDInContext(ctx, userID)

		userType := domain.UserTypeAll
		if rawUserType := r.URL.Query().Get("userType"); rawUserType != "" {
			ctx = reporting.AddExtrasToContext(ctx, map[string]string{"rawUserType": rawUserType})
			parsed, err := domain.ParseUserType(rawUserType)
			if err != nil {
				statusCode := http.StatusBadRequest
				logging.FromContext(ctx).InfoContext(ctx, "Invalid user type. Returning error", "statusCode", statusCode, "reason", "invalid user type", "rawUserType", rawUserType)
				writeError(ctx, w, statusCode, err.Error())
				return
			}
			userType = parsed
		}

		ctx = logging.AddMetaToContext(ctx, slog.String("userType", string(userType)))
		ctx = reporting.AddTagsToContext(ctx, map[string]string{"userType": string(userType)})

		promotions := getPromotions(ctx, userType)

		writeJSON(ctx, w, http.StatusOK, promotionsResponseObject{
			Success:       true,
			Offers:        emptyIfNil(promotions.Offers),
			Banners:       emptyIfNil(promotions.Banners),
			Notifications: emptyIfNil(promotions.Notifications),
			MiniOffers:    emptyIfNil(promotions.MiniOffers),
			Timestamp:     formatTimestamp(time.Now()),
		})
	}

	return middleware(handler)
}
