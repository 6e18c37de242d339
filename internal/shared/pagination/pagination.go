package pagination

// Defaults applied when a caller omits or mangles paging parameters.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
)

// Page is one slice of an ordered collection plus the full count.
type Page[T any] struct {
	Items    []T
	Page     int
	PageSize int
	Total    int64
}

// Clamp normalizes paging parameters, falling back to defaults for
// anything below 1.
func Clamp(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// Slice cuts the requested page out of an already ordered slice.
func Slice[T any](items []T, page, pageSize int) *Page[T] {
	page, pageSize = Clamp(page, pageSize)
	total := int64(len(items))
	start := (page - 1) * pageSize
	if start > len(items) {
		start = len(items)
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return &Page[T]{
		Items:    append([]T{}, items[start:end]...),
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}
}
