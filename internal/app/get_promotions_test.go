package app_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Amund211/skillforge/internal/adapters/cache"
	"github.com/Amund211/skillforge/internal/app"
	"github.com/Amund211/skillforge/internal/domain"
	"github.com/stretchr/testify/require"
)

type mockPromoProvider struct {
	calls atomic.Int64
	err   error

	// Closed to let calls to the provider return
	release chan struct{}
}

func (m *mockPromoProvider) wait() {
	m.calls.Add(1)
	if m.release != nil {
		<-m.release
	}
}

func (m *mockPromoProvider) GetOffers(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.Offer], error) {
	m.wait()
	if m.err != nil {
		return domain.Page[domain.Offer]{}, m.err
	}
	return domain.Page[domain.Offer]{Items: []domain.Offer{{ID: "offer", Priority: limit}}, Total: 1}, nil
}

func (m *mockPromoProvider) GetBanners(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.Banner], error) {
	m.wait()
	if m.err != nil {
		return domain.Page[domain.Banner]{}, m.err
	}
	return domain.Page[domain.Banner]{Items: []domain.Banner{{ID: "banner", IsActive: activeOnly}}, Total: 1}, nil
}

func (m *mockPromoProvider) GetMiniOffers(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.MiniOffer], error) {
	m.wait()
	if m.err != nil {
		return domain.Page[domain.MiniOffer]{}, m.err
	}
	return domain.Page[domain.MiniOffer]{Items: []domain.MiniOffer{{ID: "mini-offer"}}, Total: 1}, nil
}

func (m *mockPromoProvider) GetNotifications(ctx context.Context, limit int, userType domain.UserType, activeOnly bool) (domain.Page[domain.Notification], error) {
	m.wait()
	if m.err != nil {
		return domain.Page[domain.Notification]{}, m.err
	}
	return domain.Page[domain.Notification]{Items: []domain.Notification{{ID: "notification", TargetUserType: userType}}, Total: 1}, nil
}

func (m *mockPromoProvider) GetCourses(ctx context.Context, query domain.CourseQuery) (domain.CoursePage, error) {
	m.wait()
	if m.err != nil {
		return domain.CoursePage{}, m.err
	}
	return domain.CoursePage{
		Page:       domain.Page[domain.Course]{Items: []domain.Course{{ID: "course", Category: query.Category}}, Total: 1},
		Categories: []string{"Development"},
	}, nil
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestBuildGetOffersWithCache(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	t.Run("second call within a second is served from cache", func(t *testing.T) {
		t.Parallel()

		clock := &testClock{now: time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)}
		provider := &mockPromoProvider{}
		getOffers := app.BuildGetOffersWithCache(cache.NewBasicCache[domain.Page[domain.Offer]](30*time.Second, 5*time.Second, clock.Now), provider)

		first, err := getOffers(ctx, 2, true)
		require.NoError(t, err)
		require.EqualValues(t, 1, provider.calls.Load())

		clock.Advance(time.Second)

		second, err := getOffers(ctx, 2, true)
		require.NoError(t, err)
		require.Equal(t, first, second)
		require.EqualValues(t, 1, provider.calls.Load())
	})

	t.Run("expired entries are refetched", func(t *testing.T) {
		t.Parallel()

		clock := &testClock{now: time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)}
		provider := &mockPromoProvider{}
		getOffers := app.BuildGetOffersWithCache(cache.NewBasicCache[domain.Page[domain.Offer]](30*time.Second, 5*time.Second, clock.Now), provider)

		_, err := getOffers(ctx, 2, true)
		require.NoError(t, err)

		clock.Advance(30 * time.Second)

		_, err = getOffers(ctx, 2, true)
		require.NoError(t, err)
		require.EqualValues(t, 2, provider.calls.Load())
	})

	t.Run("different parameters are cached separately", func(t *testing.T) {
		t.Parallel()

		clock := &testClock{now: time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)}
		provider := &mockPromoProvider{}
		getOffers := app.BuildGetOffersWithCache(cache.NewBasicCache[domain.Page[domain.Offer]](30*time.Second, 5*time.Second, clock.Now), provider)

		two, err := getOffers(ctx, 2, true)
		require.NoError(t, err)
		three, err := getOffers(ctx, 3, true)
		require.NoError(t, err)
		_, err = getOffers(ctx, 3, false)
		require.NoError(t, err)

		require.Equal(t, 2, two.Items[0].Priority)
		require.Equal(t, 3, three.Items[0].Priority)
		require.EqualValues(t, 3, provider.calls.Load())
	})

	t.Run("errors are not cached", func(t *testing.T) {
		t.Parallel()

		clock := &testClock{now: time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)}
		provider := &mockPromoProvider{err: errors.New("connection refused")}
		getOffers := app.BuildGetOffersWithCache(cache.NewBasicCache[domain.Page[domain.Offer]](30*time.Second, 5*time.Second, clock.Now), provider)

		_, err := getOffers(ctx, 2, true)
		require.ErrorContains(t, err, "connection refused")

		_, err = getOffers(ctx, 2, true)
		require.Error(t, err)
		require.EqualValues(t, 2, provider.calls.Load())
	})
}

func TestBuildGetBannersWithCacheDeduplicates(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	provider := &mockPromoProvider{release: make(chan struct{})}
	bannersCache := cache.NewTTLCache[domain.Page[domain.Banner]](30*time.Second, 5*time.Second, time.Now)
	t.Cleanup(bannersCache.Stop)
	getBanners := app.BuildGetBannersWithCache(bannersCache, provider)

	results := make([]domain.Page[domain.Banner], 2)
	errs := make([]error, 2)

	var wg sync.WaitGroup
	for i := range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = getBanners(ctx, 1, true)
		}()
	}

	require.Eventually(t, func() bool {
		return provider.calls.Load() == 1
	}, time.Second, time.Millisecond)

	close(provider.release)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	require.Equal(t, results[0], results[1])
	require.EqualValues(t, 1, provider.calls.Load())
}

func TestBuildGetNotificationsAndCoursesWithCache(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	provider := &mockPromoProvider{}

	getNotifications := app.BuildGetNotificationsWithCache(cache.NewBasicCache[domain.Page[domain.Notification]](30*time.Second, 5*time.Second, time.Now), provider)
	getCourses := app.BuildGetCoursesWithCache(cache.NewBasicCache[domain.CoursePage](30*time.Second, 5*time.Second, time.Now), provider)

	notifications, err := getNotifications(ctx, 2, domain.UserTypeNew, true)
	require.NoError(t, err)
	require.Equal(t, domain.UserTypeNew, notifications.Items[0].TargetUserType)

	_, err = getNotifications(ctx, 2, domain.UserTypePremium, true)
	require.NoError(t, err)

	courses, err := getCourses(ctx, domain.CourseQuery{Category: "Development", Limit: 12})
	require.NoError(t, err)
	require.Equal(t, "Development", courses.Items[0].Category)
	require.Equal(t, []string{"Development"}, courses.Categories)

	_, err = getCourses(ctx, domain.CourseQuery{Category: "Development", Limit: 12})
	require.NoError(t, err)

	require.EqualValues(t, 3, provider.calls.Load())
}

func TestBuildGetPromotions(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	newGetters := func(provider *mockPromoProvider) (app.GetOffers, app.GetBanners, app.GetNotifications, app.GetMiniOffers) {
		return app.BuildGetOffersWithCache(cache.NewBasicCache[domain.Page[domain.Offer]](30*time.Second, 5*time.Second, time.Now), provider),
			app.BuildGetBannersWithCache(cache.NewBasicCache[domain.Page[domain.Banner]](30*time.Second, 5*time.Second, time.Now), provider),
			app.BuildGetNotificationsWithCache(cache.NewBasicCache[domain.Page[domain.Notification]](30*time.Second, 5*time.Second, time.Now), provider),
			app.BuildGetMiniOffersWithCache(cache.NewBasicCache[domain.Page[domain.MiniOffer]](30*time.Second, 5*time.Second, time.Now), provider)
	}

	t.Run("everything available", func(t *testing.T) {
		t.Parallel()

		provider := &mockPromoProvider{}
		getPromotions := app.BuildGetPromotions(newGetters(provider))

		promotions := getPromotions(ctx, domain.UserTypeLoggedIn)
		require.Equal(t, domain.Promotions{
			Offers:        []domain.Offer{{ID: "offer", Priority: app.DefaultOffersLimit}},
			Banners:       []domain.Banner{{ID: "banner", IsActive: true}},
			Notifications: []domain.Notification{{ID: "notification", TargetUserType: domain.UserTypeLoggedIn}},
			MiniOffers:    []domain.MiniOffer{{ID: "mini-offer"}},
		}, promotions)
		require.EqualValues(t, 4, provider.calls.Load())

		// Cached
		_ = getPromotions(ctx, domain.UserTypeLoggedIn)
		require.EqualValues(t, 4, provider.calls.Load())
	})

	t.Run("failures become empty lists", func(t *testing.T) {
		t.Parallel()

		provider := &mockPromoProvider{err: errors.New("API Error: 500")}
		getPromotions := app.BuildGetPromotions(newGetters(provider))

		promotions := getPromotions(ctx, domain.UserTypeAll)
		require.Equal(t, domain.Promotions{
			Offers:        []domain.Offer{},
			Banners:       []domain.Banner{},
			Notifications: []domain.Notification{},
			MiniOffers:    []domain.MiniOffer{},
		}, promotions)
	})

	t.Run("partial failure", func(t *testing.T) {
		t.Parallel()

		provider := &mockPromoProvider{}
		getOffers, _, getNotifications, getMiniOffers := newGetters(provider)
		failingBanners := func(ctx context.Context, limit int, activeOnly bool) (domain.Page[domain.Banner], error) {
			return domain.Page[domain.Banner]{}, domain.ErrTemporarilyUnavailable
		}

		promotions := app.BuildGetPromotions(getOffers, failingBanners, getNotifications, getMiniOffers)(ctx, domain.UserTypeAll)
		require.Len(t, promotions.Offers, 1)
		require.Empty(t, promotions.Banners)
		require.NotNil(t, promotions.Banners)
		require.Len(t, promotions.Notifications, 1)
		require.Len(t, promotions.MiniOffers, 1)
	})
}
