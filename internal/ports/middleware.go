package ports

import (
	"net/http"

	"github.com/Amund211/skillforge/internal/logging"
	"github.com/Amund211/skillforge/internal/ratelimiting"
)

// NewRateLimitMiddleware answers with a 429 error envelope instead of calling next when the request is over its limit
func NewRateLimitMiddleware(rateLimiter ratelimiting.RequestRateLimiter) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !rateLimiter.Consume(r) {
				ctx := r.Context()

				statusCode := http.StatusTooManyRequests
				logging.FromContext(ctx).InfoContext(ctx, "Rate limit exceeded", "statusCode", statusCode, "reason", "ratelimit exceeded", "key", rateLimiter.KeyFor(r))

				writeError(ctx, w, statusCode, "Rate limit exceeded")
				return
			}

			next(w, r)
		}
	}
}

// ComposeMiddlewares chains middlewares so that the first one given runs outermost
func ComposeMiddlewares(middlewares ...func(http.HandlerFunc) http.HandlerFunc) func(http.HandlerFunc) http.HandlerFunc {
	return func(h http.HandlerFunc) http.HandlerFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}
}
