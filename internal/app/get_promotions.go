package app

import (
	"context"
	"fmt"

	"github.com/Amund211/skillforge/internal/adapters/cache"
	"github.com/Amund211/skillforge/internal/adapters/promoclient"
	"github.com/Amund211/skillforge/internal/domain"
	"github.com/Amund211/skillforge/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Limits used when the caller does not give one
const (
	DefaultOffersLimit        = 2
	DefaultBannersLimit       = 1
	DefaultNotificationsLimit = 2
	DefaultMiniOffersLimit    = 2
	DefaultCoursesLimit       = 12
)

type promoProvider interface {
	GetOffers(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.Offer], error)
	GetBanners(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.Banner], error)
	GetMiniOffers(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.MiniOffer], error)
	GetNotifications(ctx context.Context, limit int, userType domain.UserType, activeOnly bool) (domain.Page[domain.Notification], error)
	GetCourses(ctx context.Context, query domain.CourseQuery) (domain.CoursePage, error)
}

type GetOffers func(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.Offer], error)

func BuildGetOffersWithCache(offersCache cache.Cache[domain.Page[domain.Offer]], provider promoProvider) GetOffers {
	return func(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.Offer], error) {
		page, err := cache.Fetch(ctx, offersCache, promoclient.OffersKey(limit, activeOnly), func(ctx context.Context) (domain.Page[domain.Offer], error) {
			return provider.GetOffers(ctx, limit, activeOnly)
		})
		if err != nil {
			return domain.Page[domain.Offer]{}, fmt.Errorf("could not get offers: %w", err)
		}
		return page, nil
	}
}

type GetBanners func(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.Banner], error)

func BuildGetBannersWithCache(bannersCache cache.Cache[domain.Page[domain.Banner]], provider promoProvider) GetBanners {
	return func(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.Banner], error) {
		page, err := cache.Fetch(ctx, bannersCache, promoclient.BannersKey(limit, activeOnly), func(ctx context.Context) (domain.Page[domain.Banner], error) {
			return provider.GetBanners(ctx, limit, activeOnly)
		})
		if err != nil {
			return domain.Page[domain.Banner]{}, fmt.Errorf("could not get banners: %w", err)
		}
		return page, nil
	}
}

type GetMiniOffers func(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.MiniOffer], error)

func BuildGetMiniOffersWithCache(miniOffersCache cache.Cache[domain.Page[domain.MiniOffer]], provider promoProvider) GetMiniOffers {
	return func(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.MiniOffer], error) {
		page, err := cache.Fetch(ctx, miniOffersCache, promoclient.MiniOffersKey(limit, activeOnly), func(ctx context.Context) (domain.Page[domain.MiniOffer], error) {
			return provider.GetMiniOffers(ctx, limit, activeOnly)
		})
		if err != nil {
			return domain.Page[domain.MiniOffer]{}, fmt.Errorf("could not get mini offers: %w", err)
		}
		return page, nil
	}
}

type GetNotifications func(ctx context.Context, limit int, userType domain.UserType, activeOnly bool) (domain.Page[domain.Notification], error)

func BuildGetNotificationsWithCache(notificationsCache cache.Cache[domain.Page[domain.Notification]], provider promoProvider) GetNotifications {
	return func(ctx context.Context, limit int, userType domain.UserType, activeOnly bool) (domain.Page[domain.Notification], error) {
		key := promoclient.NotificationsKey(limit, userType, activeOnly)
		page, err := cache.Fetch(ctx, notificationsCache, key, func(ctx context.Context) (domain.Page[domain.Notification], error) {
			return provider.GetNotifications(ctx, limit, userType, activeOnly)
		})
		if err != nil {
			return domain.Page[domain.Notification]{}, fmt.Errorf("could not get notifications: %w", err)
		}
		return page, nil
	}
}

type GetCourses func(ctx context.Context, query domain.CourseQuery) (domain.CoursePage, error)

func BuildGetCoursesWithCache(coursesCache cache.Cache[domain.CoursePage], provider promoProvider) GetCourses {
	return func(ctx context.Context, query domain.CourseQuery) (domain.CoursePage, error) {
		page, err := cache.Fetch(ctx, coursesCache, promoclient.CoursesKey(query), func(ctx context.Context) (domain.CoursePage, error) {
			return provider.GetCourses(ctx, query)
		})
		if err != nil {
			return domain.CoursePage{}, fmt.Errorf("could not get courses: %w", err)
		}
		return page, nil
	}
}

type GetPromotions func(ctx context.Context, userType domain.UserType) domain.Promotions

// BuildGetPromotions fetches every kind of promotional content concurrently.
// Promotional content is optional, so a kind that fails to load is left empty.
func BuildGetPromotions(
	getOffers GetOffers,
	getBanners GetBanners,
	getNotifications GetNotifications,
	getMiniOffers GetMiniOffers,
) GetPromotions {
	return func(ctx context.Context, userType domain.UserType) domain.Promotions {
		logger := logging.FromContext(ctx)

		promotions := domain.Promotions{
			Offers:        []domain.Offer{},
			Banners:       []domain.Banner{},
			Notifications: []domain.Notification{},
			MiniOffers:    []domain.MiniOffer{},
		}

		var g errgroup.Group

		g.Go(func() error {
			page, err := getOffers(ctx, DefaultOffersLimit, true)
			if err != nil {
				logger.WarnContext(ctx, "Failed to get offers", "error", err)
				return nil
			}
			promotions.Offers = page.Items
			return nil
		})

		g.Go(func() error {
			page, err := getBanners(ctx, DefaultBannersLimit, true)
			if err != nil {
				logger.WarnContext(ctx, "Failed to get banners", "error", err)
				return nil
			}
			promotions.Banners = page.Items
			return nil
		})

		g.Go(func() error {
			page, err := getNotifications(ctx, DefaultNotificationsLimit, userType, true)
			if err != nil {
				logger.WarnContext(ctx, "Failed to get notifications", "error", err)
				return nil
			}
			promotions.Notifications = page.Items
			return nil
		})

		g.Go(func() error {
			page, err := getMiniOffers(ctx, DefaultMiniOffersLimit, true)
			if err != nil {
				logger.WarnContext(ctx, "Failed to get mini offers", "error", err)
				return nil
			}
			promotions.MiniOffers = page.Items
			return nil
		})

		// Every goroutine swallows its own error
		_ = g.Wait()

		return promotions
	}
}
