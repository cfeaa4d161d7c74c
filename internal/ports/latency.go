package ports

import (
	"net/http"
	"time"

	"github.com/Amund211/skillforge/internal/logging"
)

// NewSimulatedLatencyMiddleware delays every request by latency to mimic a slow upstream.
// Requests whose context ends while waiting are dropped.
func NewSimulatedLatencyMiddleware(latency time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		if latency <= 0 {
			return next
		}

		return func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			timer := time.NewTimer(latency)
			defer timer.Stop()

			select {
			case <-timer.C:
				next(w, r)
			case <-ctx.Done():
				logging.FromContext(ctx).InfoContext(ctx, "Request ended during simulated latency", "error", ctx.Err())
			}
		}
	}
}
