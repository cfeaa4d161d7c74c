package domain

// Page is a limited view of a filtered collection.
// Total is the number of records that matched before the limit was applied.
type Page[T any] struct {
	Items []T `json:"data"`
	Total int `json:"total"`
}

func EmptyPage[T any]() Page[T] {
	return Page[T]{Items: []T{}, Total: 0}
}

// NewPage limits items to at most limit entries. A negative limit is treated as zero.
func NewPage[T any](items []T, limit int) Page[T] {
	total := len(items)
	limit = max(limit, 0)
	if limit < total {
		items = items[:limit]
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total}
}

// CoursePage additionally lists every category known to the catalog
type CoursePage struct {
	Page[Course]
	Categories []string `json:"categories"`
}
