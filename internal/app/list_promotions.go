package app

import (
	"context"
	"fmt"

	"github.com/Amund211/skillforge/internal/domain"
	"github.com/Amund211/skillforge/internal/logging"
)

// Probability that a listing is shown at all.
// Promotional popups are only shown some of the time to avoid fatiguing users.
const (
	offersShowProbability        = 0.3
	bannersShowProbability       = 0.4
	miniOffersShowProbability    = 0.6
	notificationsShowProbability = 0.5 // Only applied to logged in users
)

// RollFunc returns a uniformly distributed number in [0, 1)
type RollFunc func() float64

func shouldShow(roll RollFunc, probability float64) bool {
	return roll() < probability
}

func validateLimit(limit int) error {
	if limit < 0 {
		return fmt.Errorf("%w: limit must not be negative (%d)", domain.ErrInvalidQuery, limit)
	}
	return nil
}

type offerLister interface {
	ListOffers(activeOnly bool) []domain.Offer
}

type ListOffers func(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.Offer], error)

func BuildListOffers(lister offerLister, roll RollFunc) ListOffers {
	return func(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.Offer], error) {
		if err := validateLimit(limit); err != nil {
			return domain.Page[domain.Offer]{}, err
		}

		if !shouldShow(roll, offersShowProbability) {
			logging.FromContext(ctx).InfoContext(ctx, "Not showing offers this time")
			return domain.EmptyPage[domain.Offer](), nil
		}

		return domain.NewPage(lister.ListOffers(activeOnly), limit), nil
	}
}

type bannerLister interface {
	ListBanners(activeOnly bool) []domain.Banner
}

type ListBanners func(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.Banner], error)

func BuildListBanners(lister bannerLister, roll RollFunc) ListBanners {
	return func(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.Banner], error) {
		if err := validateLimit(limit); err != nil {
			return domain.Page[domain.Banner]{}, err
		}

		if !shouldShow(roll, bannersShowProbability) {
			logging.FromContext(ctx).InfoContext(ctx, "Not showing banners this time")
			return domain.EmptyPage[domain.Banner](), nil
		}

		return domain.NewPage(lister.ListBanners(activeOnly), limit), nil
	}
}

type miniOfferLister interface {
	ListMiniOffers(activeOnly bool) []domain.MiniOffer
}

type ListMiniOffers func(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.MiniOffer], error)

func BuildListMiniOffers(lister miniOfferLister, roll RollFunc) ListMiniOffers {
	return func(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.MiniOffer], error) {
		if err := validateLimit(limit); err != nil {
			return domain.Page[domain.MiniOffer]{}, err
		}

		if !shouldShow(roll, miniOffersShowProbability) {
			logging.FromContext(ctx).InfoContext(ctx, "Not showing mini offers this time")
			return domain.EmptyPage[domain.MiniOffer](), nil
		}

		return domain.NewPage(lister.ListMiniOffers(activeOnly), limit), nil
	}
}

type notificationLister interface {
	ListNotifications(activeOnly bool, userType domain.UserType) []domain.Notification
}

type ListNotifications func(ctx context.Context, limit int, userType domain.UserType, activeOnly bool) (domain.Page[domain.Notification], error)

func BuildListNotifications(lister notificationLister, roll RollFunc) ListNotifications {
	return func(ctx context.Context, limit int, userType domain.UserType, activeOnly bool) (domain.Page[domain.Notification], error) {
		if err := validateLimit(limit); err != nil {
			return domain.Page[domain.Notification]{}, err
		}

		if userType == domain.UserTypeLoggedIn && !shouldShow(roll, notificationsShowProbability) {
			logging.FromContext(ctx).InfoContext(ctx, "Not showing notifications this time")
			return domain.EmptyPage[domain.Notification](), nil
		}

		return domain.NewPage(lister.ListNotifications(activeOnly, userType), limit), nil
	}
}

type courseLister interface {
	ListCourses(query domain.CourseQuery) []domain.Course
	Categories() []string
}

type ListCourses func(ctx context.Context, query domain.CourseQuery) (domain.CoursePage, error)

func BuildListCourses(lister courseLister) ListCourses {
	return func(ctx context.Context, query domain.CourseQuery) (domain.CoursePage, error) {
		if err := validateLimit(query.Limit); err != nil {
			return domain.CoursePage{}, err
		}

		return domain.CoursePage{
			Page:       domain.NewPage(lister.ListCourses(query), query.Limit),
			Categories: lister.Categories(),
		}, nil
	}
}
