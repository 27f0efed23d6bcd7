package pagination_test

import (
	"testing"

	"catalog/internal/pagination"

	"github.com/stretchr/testify/assert"
)

func intRange(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginate_FirstPage(t *testing.T) {
	res := pagination.Paginate(intRange(45), 1, 20)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, res.Items)
	assert.Equal(t, 1, res.CurrentPage)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 45, res.TotalItems)
	assert.Equal(t, 20, res.ItemsPerPage)
}

func TestPaginate_LastPageIsPartial(t *testing.T) {
	res := pagination.Paginate(intRange(45), 3, 20)

	assert.Len(t, res.Items, 5)
	assert.Equal(t, 41, res.Items[0])
	assert.Equal(t, 3, res.CurrentPage)
}

func TestPaginate_ClampsPageBelowOne(t *testing.T) {
	res := pagination.Paginate(intRange(10), 0, 5)

	assert.Equal(t, 1, res.CurrentPage)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, res.Items)

	res = pagination.Paginate(intRange(10), -3, 5)
	assert.Equal(t, 1, res.CurrentPage)
}

func TestPaginate_ClampsPagePastEnd(t *testing.T) {
	res := pagination.Paginate(intRange(10), 99, 4)

	assert.Equal(t, 3, res.CurrentPage)
	assert.Equal(t, []int{9, 10}, res.Items)
	assert.Equal(t, 3, res.TotalPages)
}

func TestPaginate_EmptyList(t *testing.T) {
	res := pagination.Paginate([]int{}, 1, 20)

	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.TotalPages)
	assert.Equal(t, 0, res.TotalItems)
	assert.Equal(t, 1, res.CurrentPage)
}

// Every item appears on exactly one page: the slices partition the list.
func TestPaginate_PagesPartitionTheList(t *testing.T) {
	for _, n := range []int{0, 1, 7, 20, 21, 100} {
		for _, limit := range []int{1, 3, 20} {
			items := intRange(n)
			first := pagination.Paginate(items, 1, limit)

			var seen []int
			for page := 1; page <= first.TotalPages; page++ {
				seen = append(seen, pagination.Paginate(items, page, limit).Items...)
			}
			assert.Equal(t, items, append([]int{}, seen...), "n=%d limit=%d", n, limit)
		}
	}
}
