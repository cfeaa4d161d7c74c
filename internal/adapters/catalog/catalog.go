package catalog

import (
	"cmp"
	"slices"

	"github.com/Amund211/skillforge/internal/domain"
)

// Catalog is the static data behind the mock API.
// Records are never mutated after construction and every List method returns
// a fresh slice.
type Catalog struct {
	offers        []domain.Offer
	banners       []domain.Banner
	notifications []domain.Notification
	miniOffers    []domain.MiniOffer
	courses       []domain.Course
}

func New(
	offers []domain.Offer,
	banners []domain.Banner,
	notifications []domain.Notification,
	miniOffers []domain.MiniOffer,
	courses []domain.Course,
) *Catalog {
	return &Catalog{
		offers:        slices.Clone(offers),
		banners:       slices.Clone(banners),
		notifications: slices.Clone(notifications),
		miniOffers:    slices.Clone(miniOffers),
		courses:       slices.Clone(courses),
	}
}

// NewDefault returns the catalog with the sample records shipped with the site
func NewDefault() *Catalog {
	return New(
		defaultOffers(),
		defaultBanners(),
		defaultNotifications(),
		defaultMiniOffers(),
		defaultCourses(),
	)
}

func filter[T any](items []T, keep func(T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}

// ListOffers returns offers ordered by ascending priority
func (c *Catalog) ListOffers(activeOnly bool) []domain.Offer {
	offers := filter(c.offers, func(offer domain.Offer) bool {
		return !activeOnly || offer.IsActive
	})
	slices.SortStableFunc(offers, func(a, b domain.Offer) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
	return offers
}

// ListBanners returns banners ordered by ascending priority
func (c *Catalog) ListBanners(activeOnly bool) []domain.Banner {
	banners := filter(c.banners, func(banner domain.Banner) bool {
		return !activeOnly || banner.IsActive
	})
	slices.SortStableFunc(banners, func(a, b domain.Banner) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
	return banners
}

// ListMiniOffers returns mini offers ordered by ascending priority
func (c *Catalog) ListMiniOffers(activeOnly bool) []domain.MiniOffer {
	miniOffers := filter(c.miniOffers, func(miniOffer domain.MiniOffer) bool {
		return !activeOnly || miniOffer.IsActive
	})
	slices.SortStableFunc(miniOffers, func(a, b domain.MiniOffer) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
	return miniOffers
}

// ListNotifications returns notifications for the audience, high priority first
func (c *Catalog) ListNotifications(activeOnly bool, userType domain.UserType) []domain.Notification {
	notifications := filter(c.notifications, func(notification domain.Notification) bool {
		if activeOnly && !notification.IsActive {
			return false
		}
		return notification.TargetsUserType(userType)
	})
	slices.SortStableFunc(notifications, func(a, b domain.Notification) int {
		return cmp.Compare(b.Priority.Rank(), a.Priority.Rank())
	})
	return notifications
}

// ListCourses returns matching courses, best rated first, ties broken by enrollment.
// The limit of the query is not applied.
func (c *Catalog) ListCourses(query domain.CourseQuery) []domain.Course {
	courses := filter(c.courses, query.Matches)
	slices.SortStableFunc(courses, func(a, b domain.Course) int {
		if byRating := cmp.Compare(b.Rating, a.Rating); byRating != 0 {
			return byRating
		}
		return cmp.Compare(b.StudentsEnrolled, a.StudentsEnrolled)
	})
	return courses
}

// Categories lists every course category in the order first seen
func (c *Catalog) Categories() []string {
	categories := make([]string, 0)
	for _, course := range c.courses {
		if !slices.Contains(categories, course.Category) {
			categories = append(categories, course.Category)
		}
	}
	return categories
}
