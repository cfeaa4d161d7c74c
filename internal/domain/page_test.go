package domain_test

import (
	"testing"

	"github.com/Amund211/skillforge/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b", "c"}

	cases := []struct {
		name     string
		items    []string
		limit    int
		expected domain.Page[string]
	}{
		{name: "limit below total", items: items, limit: 2, expected: domain.Page[string]{Items: []string{"a", "b"}, Total: 3}},
		{name: "limit equal to total", items: items, limit: 3, expected: domain.Page[string]{Items: items, Total: 3}},
		{name: "limit above total", items: items, limit: 10, expected: domain.Page[string]{Items: items, Total: 3}},
		{name: "zero limit", items: items, limit: 0, expected: domain.Page[string]{Items: []string{}, Total: 3}},
		{name: "negative limit", items: items, limit: -1, expected: domain.Page[string]{Items: []string{}, Total: 3}},
		{name: "nil items", items: nil, limit: 2, expected: domain.Page[string]{Items: []string{}, Total: 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			page := domain.NewPage(c.items, c.limit)
			require.Equal(t, c.expected, page)
			require.NotNil(t, page.Items)
		})
	}
}

func TestEmptyPage(t *testing.T) {
	t.Parallel()

	page := domain.EmptyPage[domain.Offer]()
	require.NotNil(t, page.Items)
	require.Empty(t, page.Items)
	require.Equal(t, 0, page.Total)
}
