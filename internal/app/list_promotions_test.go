package app_test

import (
	"testing"

	"github.com/Amund211/skillforge/internal/adapters/catalog"
	"github.com/Amund211/skillforge/internal/app"
	"github.com/Amund211/skillforge/internal/domain"
	"github.com/stretchr/testify/require"
)

func fixedRoll(value float64) app.RollFunc {
	return func() float64 { return value }
}

func newTestCatalog() *catalog.Catalog {
	return catalog.New(
		[]domain.Offer{
			{ID: "offer-3", IsActive: true, Priority: 3},
			{ID: "offer-1", IsActive: true, Priority: 1},
			{ID: "offer-inactive", IsActive: false, Priority: 0},
			{ID: "offer-2", IsActive: true, Priority: 2},
		},
		[]domain.Banner{
			{ID: "banner-2", IsActive: true, Priority: 2},
			{ID: "banner-1", IsActive: true, Priority: 1},
		},
		[]domain.Notification{
			{ID: "low", IsActive: true, Priority: domain.NotificationPriorityLow, TargetUserType: domain.UserTypeAll},
			{ID: "high-premium", IsActive: true, Priority: domain.NotificationPriorityHigh, TargetUserType: domain.UserTypePremium},
			{ID: "medium-logged-in", IsActive: true, Priority: domain.NotificationPriorityMedium, TargetUserType: domain.UserTypeLoggedIn},
		},
		[]domain.MiniOffer{
			{ID: "mini-1", IsActive: true, Priority: 1},
			{ID: "mini-inactive", IsActive: false, Priority: 2},
		},
		[]domain.Course{
			{ID: "design", Category: "Design", Rating: 4.5, StudentsEnrolled: 10},
			{ID: "dev-top", Category: "Development", Rating: 4.9, StudentsEnrolled: 5},
			{ID: "dev-popular", Category: "Development", Rating: 4.7, StudentsEnrolled: 50, IsPopular: true},
		},
	)
}

func TestBuildListOffers(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	t.Run("shown", func(t *testing.T) {
		t.Parallel()

		listOffers := app.BuildListOffers(newTestCatalog(), fixedRoll(0.29))

		page, err := listOffers(ctx, 2, true)
		require.NoError(t, err)
		require.Equal(t, 3, page.Total)
		require.Len(t, page.Items, 2)
		require.Equal(t, "offer-1", page.Items[0].ID)
		require.Equal(t, "offer-2", page.Items[1].ID)
	})

	t.Run("inactive included", func(t *testing.T) {
		t.Parallel()

		listOffers := app.BuildListOffers(newTestCatalog(), fixedRoll(0))

		page, err := listOffers(ctx, 10, false)
		require.NoError(t, err)
		require.Equal(t, 4, page.Total)
		require.Equal(t, "offer-inactive", page.Items[0].ID)
	})

	t.Run("hidden", func(t *testing.T) {
		t.Parallel()

		listOffers := app.BuildListOffers(newTestCatalog(), fixedRoll(0.3))

		page, err := listOffers(ctx, 2, true)
		require.NoError(t, err)
		require.Equal(t, domain.EmptyPage[domain.Offer](), page)
	})

	t.Run("zero limit", func(t *testing.T) {
		t.Parallel()

		listOffers := app.BuildListOffers(newTestCatalog(), fixedRoll(0))

		page, err := listOffers(ctx, 0, true)
		require.NoError(t, err)
		require.Empty(t, page.Items)
		require.NotNil(t, page.Items)
		require.Equal(t, 3, page.Total)
	})

	t.Run("negative limit", func(t *testing.T) {
		t.Parallel()

		listOffers := app.BuildListOffers(newTestCatalog(), fixedRoll(0))

		_, err := listOffers(ctx, -1, true)
		require.ErrorIs(t, err, domain.ErrInvalidQuery)
	})
}

func TestBuildListBanners(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	page, err := app.BuildListBanners(newTestCatalog(), fixedRoll(0.39))(ctx, 1, true)
	require.NoError(t, err)
	require.Equal(t, 2, page.Total)
	require.Len(t, page.Items, 1)
	require.Equal(t, "banner-1", page.Items[0].ID)

	page, err = app.BuildListBanners(newTestCatalog(), fixedRoll(0.4))(ctx, 1, true)
	require.NoError(t, err)
	require.Equal(t, domain.EmptyPage[domain.Banner](), page)
}

func TestBuildListMiniOffers(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	page, err := app.BuildListMiniOffers(newTestCatalog(), fixedRoll(0.59))(ctx, 2, true)
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	require.Equal(t, "mini-1", page.Items[0].ID)

	page, err = app.BuildListMiniOffers(newTestCatalog(), fixedRoll(0.6))(ctx, 2, true)
	require.NoError(t, err)
	require.Equal(t, domain.EmptyPage[domain.MiniOffer](), page)
}

func TestBuildListNotifications(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	t.Run("everyone sees everything regardless of roll", func(t *testing.T) {
		t.Parallel()

		rolled := false
		roll := func() float64 {
			rolled = true
			return 0.99
		}

		page, err := app.BuildListNotifications(newTestCatalog(), roll)(ctx, 10, domain.UserTypeAll, true)
		require.NoError(t, err)
		require.False(t, rolled)
		require.Equal(t, 3, page.Total)
		require.Equal(t, "high-premium", page.Items[0].ID)
		require.Equal(t, "medium-logged-in", page.Items[1].ID)
		require.Equal(t, "low", page.Items[2].ID)
	})

	t.Run("logged in shown", func(t *testing.T) {
		t.Parallel()

		page, err := app.BuildListNotifications(newTestCatalog(), fixedRoll(0.49))(ctx, 2, domain.UserTypeLoggedIn, true)
		require.NoError(t, err)
		require.Equal(t, 2, page.Total)
		require.Equal(t, "medium-logged-in", page.Items[0].ID)
		require.Equal(t, "low", page.Items[1].ID)
	})

	t.Run("logged in hidden", func(t *testing.T) {
		t.Parallel()

		page, err := app.BuildListNotifications(newTestCatalog(), fixedRoll(0.5))(ctx, 2, domain.UserTypeLoggedIn, true)
		require.NoError(t, err)
		require.Equal(t, domain.EmptyPage[domain.Notification](), page)
	})

	t.Run("premium", func(t *testing.T) {
		t.Parallel()

		page, err := app.BuildListNotifications(newTestCatalog(), fixedRoll(0.99))(ctx, 2, domain.UserTypePremium, true)
		require.NoError(t, err)
		require.Equal(t, 2, page.Total)
		require.Equal(t, "high-premium", page.Items[0].ID)
	})
}

func TestBuildListCourses(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	listCourses := app.BuildListCourses(newTestCatalog())

	t.Run("limit", func(t *testing.T) {
		t.Parallel()

		page, err := listCourses(ctx, domain.CourseQuery{Limit: 2})
		require.NoError(t, err)
		require.Equal(t, 3, page.Total)
		require.Len(t, page.Items, 2)
		require.Equal(t, "dev-top", page.Items[0].ID)
		require.Equal(t, "dev-popular", page.Items[1].ID)
		require.Equal(t, []string{"Design", "Development"}, page.Categories)
	})

	t.Run("filters", func(t *testing.T) {
		t.Parallel()

		page, err := listCourses(ctx, domain.CourseQuery{Category: "development", PopularOnly: true, Limit: 12})
		require.NoError(t, err)
		require.Equal(t, 1, page.Total)
		require.Equal(t, "dev-popular", page.Items[0].ID)
		require.Equal(t, []string{"Design", "Development"}, page.Categories)
	})

	t.Run("negative limit", func(t *testing.T) {
		t.Parallel()

		_, err := listCourses(ctx, domain.CourseQuery{Limit: -5})
		require.ErrorIs(t, err, domain.ErrInvalidQuery)
	})
}
