// Package pagination slices an in-memory list into pages. It is computed per
// request and never persisted.
package pagination

// Result holds one page of items plus the totals computed from the full list.
type Result[T any] struct {
	Items        []T
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	ItemsPerPage int
}

// Paginate returns the 1-based page of items with the given limit. Pages below
// 1 are treated as 1 and pages past the end are clamped to the last page, so
// the call never fails. A limit <= 0 is a caller contract violation; the HTTP
// layer rejects it before this point.
func Paginate[T any](items []T, page, limit int) Result[T] {
	totalItems := len(items)
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	start := (page - 1) * limit
	end := start + limit
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return Result[T]{
		Items:        items[start:end],
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: limit,
	}
}
