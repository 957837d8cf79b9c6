package tableview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	Key   int
	Index int
	Name  string
}

func rowColumns() Columns[row] {
	return Columns[row]{
		"key":   func(r row) Cell { return NumberCell(float64(r.Key)) },
		"index": func(r row) Cell { return NumberCell(float64(r.Index)) },
		"name": func(r row) Cell {
			if r.Name == "" {
				return MissingCell()
			}
			return StringCell(r.Name)
		},
	}
}

func TestView_SortStability(t *testing.T) {
	records := []row{
		{Key: 1, Index: 0},
		{Key: 1, Index: 1},
		{Key: 1, Index: 2},
	}

	state := State{SortKey: "key", SortDirection: SortAsc}
	page := View(records, state, rowColumns())

	for i, r := range page.Items {
		assert.Equal(t, i, r.Index, "equal keys must keep input order")
	}
}

func TestView_SortDescending(t *testing.T) {
	records := []row{
		{Key: 2, Index: 0},
		{Key: 3, Index: 1},
		{Key: 1, Index: 2},
	}

	state := State{SortKey: "key", SortDirection: SortDesc}
	page := View(records, state, rowColumns())

	keys := []int{page.Items[0].Key, page.Items[1].Key, page.Items[2].Key}
	assert.Equal(t, []int{3, 2, 1}, keys)
}

func TestView_MissingValuesSortLast(t *testing.T) {
	records := []row{
		{Name: "", Index: 0},
		{Name: "banana", Index: 1},
		{Name: "apple", Index: 2},
	}

	ascending := View(records, State{SortKey: "name", SortDirection: SortAsc}, rowColumns())
	assert.Equal(t, "apple", ascending.Items[0].Name)
	assert.Equal(t, "banana", ascending.Items[1].Name)
	assert.Equal(t, "", ascending.Items[2].Name)

	descending := View(records, State{SortKey: "name", SortDirection: SortDesc}, rowColumns())
	assert.Equal(t, "banana", descending.Items[0].Name)
	assert.Equal(t, "apple", descending.Items[1].Name)
	assert.Equal(t, "", descending.Items[2].Name, "missing stays last under both directions")
}

func TestToggle(t *testing.T) {
	state := State{}

	state = Toggle(state, "amount")
	assert.Equal(t, "amount", state.SortKey)
	assert.Equal(t, SortAsc, state.SortDirection)

	state = Toggle(state, "amount")
	assert.Equal(t, SortDesc, state.SortDirection)

	state = Toggle(state, "amount")
	assert.Equal(t, SortAsc, state.SortDirection)

	// A different column resets to ascending.
	state = Toggle(state, "amount")
	state = Toggle(state, "category")
	assert.Equal(t, "category", state.SortKey)
	assert.Equal(t, SortAsc, state.SortDirection)
}

func TestView_PaginationBoundary(t *testing.T) {
	records := make([]row, 25)
	for i := range records {
		records[i] = row{Key: i, Index: i}
	}

	columns := rowColumns()

	page1 := View(records, State{Page: 1, PageSize: 10}, columns)
	assert.Equal(t, 3, page1.TotalPages)
	assert.Len(t, page1.Items, 10)

	page3 := View(records, State{Page: 3, PageSize: 10}, columns)
	assert.Len(t, page3.Items, 5)

	// Beyond the last page clamps instead of serving an empty page.
	beyond := View(records, State{Page: 7, PageSize: 10}, columns)
	assert.Equal(t, 3, beyond.CurrentPage)
	assert.Len(t, beyond.Items, 5)

	below := View(records, State{Page: 0, PageSize: 10}, columns)
	assert.Equal(t, 1, below.CurrentPage)
}

func TestView_FilterConjunction(t *testing.T) {
	records := []row{
		{Key: 1, Name: "alpha"},
		{Key: 1, Name: "beta"},
		{Key: 2, Name: "alpha"},
	}

	state := State{
		Filters: map[string]string{
			"key":  "1",
			"name": FilterAll,
		},
	}

	page := View(records, state, rowColumns())

	assert.Len(t, page.Items, 2)
	for _, r := range page.Items {
		assert.Equal(t, 1, r.Key)
	}
}

func TestView_FilterAllFieldsActive(t *testing.T) {
	records := []row{
		{Key: 1, Name: "alpha"},
		{Key: 1, Name: "beta"},
		{Key: 2, Name: "alpha"},
	}

	state := State{
		Filters: map[string]string{
			"key":  "1",
			"name": "alpha",
		},
	}

	page := View(records, state, rowColumns())

	assert.Len(t, page.Items, 1)
	assert.Equal(t, "alpha", page.Items[0].Name)
	assert.Equal(t, 1, page.Items[0].Key)
}

func TestView_EmptyInput(t *testing.T) {
	page := View(nil, State{}, rowColumns())

	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 0, page.TotalCount)
}

func TestView_PipelineOrder(t *testing.T) {
	// Filtering must run before pagination: 30 matching records out of 60
	// paginate into 3 pages, not 6.
	records := make([]row, 60)
	for i := range records {
		records[i] = row{Key: i % 2, Index: i, Name: fmt.Sprintf("r%02d", i)}
	}

	state := State{
		Filters:  map[string]string{"key": "0"},
		SortKey:  "index",
		PageSize: 10,
		Page:     1,
	}

	page := View(records, state, rowColumns())

	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 30, page.TotalCount)
	for _, r := range page.Items {
		assert.Equal(t, 0, r.Key)
	}
}

func TestMatching_IgnoresPagination(t *testing.T) {
	records := make([]row, 35)
	for i := range records {
		records[i] = row{Key: 1, Index: i}
	}

	state := State{Page: 2, PageSize: 10, SortKey: "index", SortDirection: SortDesc}
	matching := Matching(records, state, rowColumns())

	assert.Len(t, matching, 35)
	assert.Equal(t, 34, matching[0].Index, "sorted set, not the visible page")
}
