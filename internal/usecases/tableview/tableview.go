package tableview

import (
	"sort"
	"strconv"
)

// FilterAll is the sentinel filter value meaning "do not filter this field".
const FilterAll = "all"

// DefaultPageSize matches the table widgets' fixed page length.
const DefaultPageSize = 10

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Cell is one comparable table value. Numbers order numerically, strings
// lexicographically; a missing cell sorts after everything else regardless
// of direction.
type Cell struct {
	kind cellKind
	str  string
	num  float64
}

type cellKind int

const (
	cellMissing cellKind = iota
	cellString
	cellNumber
)

func StringCell(v string) Cell  { return Cell{kind: cellString, str: v} }
func NumberCell(v float64) Cell { return Cell{kind: cellNumber, num: v} }
func MissingCell() Cell         { return Cell{kind: cellMissing} }

// Text renders the cell for filtering and CSV export.
func (c Cell) Text() string {
	switch c.kind {
	case cellString:
		return c.str
	case cellNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	default:
		return ""
	}
}

// less orders two cells ascending. Missing cells are handled by the caller
// so that they can stay last under both directions.
func (c Cell) less(other Cell) bool {
	if c.kind == cellNumber && other.kind == cellNumber {
		return c.num < other.num
	}
	return c.Text() < other.Text()
}

// Columns maps a column name to its cell accessor.
type Columns[T any] map[string]func(T) Cell

// State is the transient view state of one table: single sort key, exact
// match filters, current page. The underlying record set is never mutated.
type State struct {
	SortKey       string
	SortDirection SortDirection
	Filters       map[string]string
	Page          int
	PageSize      int
}

// Toggle returns the state after a click on column key: the same key flips
// the direction, a new key resets to ascending.
func Toggle(state State, key string) State {
	if state.SortKey == key && state.SortDirection == SortAsc {
		state.SortDirection = SortDesc
		return state
	}

	state.SortKey = key
	state.SortDirection = SortAsc
	return state
}

// Page is one rendered table page plus its pagination metadata.
type Page[T any] struct {
	Items       []T `json:"items"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	TotalCount  int `json:"total_count"`
}

// View runs the full pipeline, in this fixed order: filter, sort, paginate.
// An empty input is valid and yields an empty page with TotalPages 1.
func View[T any](records []T, state State, columns Columns[T]) Page[T] {
	matching := Matching(records, state, columns)

	pageSize := state.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalPages := (len(matching) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	// Clamp instead of serving a stale out-of-range page.
	page := state.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(matching) {
		start = len(matching)
	}
	if end > len(matching) {
		end = len(matching)
	}

	return Page[T]{
		Items:       matching[start:end],
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  len(matching),
	}
}

// Matching applies the filter and sort stages without paginating. CSV export
// runs on this set, so the file always reflects every matching record, never
// just the visible page.
func Matching[T any](records []T, state State, columns Columns[T]) []T {
	filtered := filter(records, state.Filters, columns)
	sortRecords(filtered, state, columns)
	return filtered
}

func filter[T any](records []T, filters map[string]string, columns Columns[T]) []T {
	kept := make([]T, 0, len(records))

	for _, record := range records {
		if matchesAll(record, filters, columns) {
			kept = append(kept, record)
		}
	}

	return kept
}

// matchesAll is conjunctive: every active filter must match exactly. A filter
// on a column without an accessor never matches.
func matchesAll[T any](record T, filters map[string]string, columns Columns[T]) bool {
	for field, value := range filters {
		if value == FilterAll || value == "" {
			continue
		}

		accessor, ok := columns[field]
		if !ok {
			return false
		}

		if accessor(record).Text() != value {
			return false
		}
	}

	return true
}

func sortRecords[T any](records []T, state State, columns Columns[T]) {
	if state.SortKey == "" {
		return
	}

	accessor, ok := columns[state.SortKey]
	if !ok {
		return
	}

	descending := state.SortDirection == SortDesc

	// Stable sort keeps the relative input order on ties.
	sort.SliceStable(records, func(i, j int) bool {
		a := accessor(records[i])
		b := accessor(records[j])

		// Missing values sort last under both directions.
		if a.kind == cellMissing || b.kind == cellMissing {
			return a.kind != cellMissing && b.kind == cellMissing
		}

		if descending {
			return b.less(a)
		}
		return a.less(b)
	})
}
