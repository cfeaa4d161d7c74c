// promo-fetch calls the promotions API through the request cache, optionally
// from many concurrent callers, and reports how many requests reached the API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/Amund211/skillforge/internal/adapters/cache"
	"github.com/Amund211/skillforge/internal/adapters/promoclient"
	"github.com/Amund211/skillforge/internal/app"
	"github.com/Amund211/skillforge/internal/domain"
	"github.com/Amund211/skillforge/internal/logging"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"
)

type promoProvider interface {
	GetOffers(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.Offer], error)
	GetBanners(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.Banner], error)
	GetMiniOffers(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.MiniOffer], error)
	GetNotifications(ctx context.Context, limit int, userType domain.UserType, activeOnly bool) (domain.Page[domain.Notification], error)
	GetCourses(ctx context.Context, query domain.CourseQuery) (domain.CoursePage, error)
}

// countingProvider counts the requests that actually reach the API
type countingProvider struct {
	provider promoProvider
	calls    atomic.Int64
}

func (p *countingProvider) GetOffers(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.Offer], error) {
	p.calls.Add(1)
	return p.provider.GetOffers(ctx, limit, activeOnly)
}

func (p *countingProvider) GetBanners(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.Banner], error) {
	p.calls.Add(1)
	return p.provider.GetBanners(ctx, limit, activeOnly)
}

func (p *countingProvider) GetMiniOffers(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.MiniOffer], error) {
	p.calls.Add(1)
	return p.provider.GetMiniOffers(ctx, limit, activeOnly)
}

func (p *countingProvider) GetNotifications(ctx context.Context, limit int, userType domain.UserType, activeOnly bool) (domain.Page[domain.Notification], error) {
	p.calls.Add(1)
	return p.provider.GetNotifications(ctx, limit, userType, activeOnly)
}

func (p *countingProvider) GetCourses(ctx context.Context, query domain.CourseQuery) (domain.CoursePage, error) {
	p.calls.Add(1)
	return p.provider.GetCourses(ctx, query)
}

type fetchFunc func(ctx context.Context) (any, error)

// buildFetch wires the requested endpoint through fresh caches.
// Call the returned function to release the caches.
func buildFetch(opts Options, provider promoProvider) (fetchFunc, func()) {
	// Validated by Options.Validate
	userType, _ := domain.ParseUserType(opts.UserType)

	switch opts.Endpoint {
	case "offers":
		offersCache := cache.NewTTLCache[domain.Page[domain.Offer]](opts.TTL, opts.Timeout, time.Now)
		getOffers := app.BuildGetOffersWithCache(offersCache, provider)
		return func(ctx context.Context) (any, error) {
			return getOffers(ctx, opts.limitOr(app.DefaultOffersLimit), opts.Active)
		}, offersCache.Stop
	case "banners":
		bannersCache := cache.NewTTLCache[domain.Page[domain.Banner]](opts.TTL, opts.Timeout, time.Now)
		getBanners := app.BuildGetBannersWithCache(bannersCache, provider)
		return func(ctx context.Context) (any, error) {
			return getBanners(ctx, opts.limitOr(app.DefaultBannersLimit), opts.Active)
		}, bannersCache.Stop
	case "notifications":
		notificationsCache := cache.NewTTLCache[domain.Page[domain.Notification]](opts.TTL, opts.Timeout, time.Now)
		getNotifications := app.BuildGetNotificationsWithCache(notificationsCache, provider)
		return func(ctx context.Context) (any, error) {
			return getNotifications(ctx, opts.limitOr(app.DefaultNotificationsLimit), userType, opts.Active)
		}, notificationsCache.Stop
	case "mini-offers":
		miniOffersCache := cache.NewTTLCache[domain.Page[domain.MiniOffer]](opts.TTL, opts.Timeout, time.Now)
		getMiniOffers := app.BuildGetMiniOffersWithCache(miniOffersCache, provider)
		return func(ctx context.Context) (any, error) {
			return getMiniOffers(ctx, opts.limitOr(app.DefaultMiniOffersLimit), opts.Active)
		}, miniOffersCache.Stop
	case "courses":
		coursesCache := cache.NewTTLCache[domain.CoursePage](opts.TTL, opts.Timeout, time.Now)
		getCourses := app.BuildGetCoursesWithCache(coursesCache, provider)
		query := domain.CourseQuery{
			Category:    opts.Category,
			Level:       opts.Level,
			PopularOnly: opts.Popular,
			NewOnly:     opts.New,
			Limit:       opts.limitOr(app.DefaultCoursesLimit),
		}
		return func(ctx context.Context) (any, error) {
			return getCourses(ctx, query)
		}, coursesCache.Stop
	}

	offersCache := cache.NewTTLCache[domain.Page[domain.Offer]](opts.TTL, opts.Timeout, time.Now)
	bannersCache := cache.NewTTLCache[domain.Page[domain.Banner]](opts.TTL, opts.Timeout, time.Now)
	notificationsCache := cache.NewTTLCache[domain.Page[domain.Notification]](opts.TTL, opts.Timeout, time.Now)
	miniOffersCache := cache.NewTTLCache[domain.Page[domain.MiniOffer]](opts.TTL, opts.Timeout, time.Now)

	getPromotions := app.BuildGetPromotions(
		app.BuildGetOffersWithCache(offersCache, provider),
		app.BuildGetBannersWithCache(bannersCache, provider),
		app.BuildGetNotificationsWithCache(notificationsCache, provider),
		app.BuildGetMiniOffersWithCache(miniOffersCache, provider),
	)
	stop := func() {
		offersCache.Stop()
		bannersCache.Stop()
		notificationsCache.Stop()
		miniOffersCache.Stop()
	}
	return func(ctx context.Context) (any, error) {
		return getPromotions(ctx, userType), nil
	}, stop
}

// run performs opts.Rounds rounds of opts.Callers concurrent fetches and
// returns the result seen by the last caller to finish.
func run(ctx context.Context, opts Options, fetch fetchFunc) (any, int, error) {
	var last atomic.Value
	failures := atomic.Int64{}

	for round := range opts.Rounds {
		if round > 0 && opts.Pause > 0 {
			select {
			case <-time.After(opts.Pause):
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			}
		}

		var g errgroup.Group
		for range opts.Callers {
			g.Go(func() error {
				result, err := fetch(ctx)
				if err != nil {
					failures.Add(1)
					logging.FromContext(ctx).WarnContext(ctx, "Fetch failed", "round", round, "error", err)
					return nil
				}
				last.Store(&result)
				return nil
			})
		}
		_ = g.Wait()
	}

	result, _ := last.Load().(*any)
	if result == nil {
		return nil, int(failures.Load()), fmt.Errorf("every fetch failed")
	}
	return *result, int(failures.Load()), nil
}

func main() {
	var opts Options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := opts.Validate(); err != nil {
		logger.Error("Invalid options", "error", err.Error())
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logging.AddToContext(ctx, logger)

	client, err := promoclient.New(&http.Client{Timeout: opts.Timeout + time.Second}, opts.BaseURL)
	if err != nil {
		logger.Error("Failed to create promo client", "error", err.Error())
		os.Exit(2)
	}
	provider := &countingProvider{provider: client}

	fetch, stopCaches := buildFetch(opts, provider)
	defer stopCaches()

	start := time.Now()
	result, failures, err := run(ctx, opts, fetch)
	logger.Info(
		"Done",
		"endpoint", opts.Endpoint,
		"fetches", opts.Rounds*opts.Callers,
		"failures", failures,
		"apiCalls", provider.calls.Load(),
		"duration", time.Since(start),
	)
	if err != nil {
		logger.Error("No result", "error", err.Error())
		stopCaches()
		os.Exit(1)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		logger.Error("Failed to write result", "error", err.Error())
		stopCaches()
		os.Exit(1)
	}
}
