// Package tableview projects raw collections into what a paginated,
// sortable, filterable table should render. It performs no rendering
// itself; the table widget consumes the projected rows and counts.
package tableview

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Direction is a sort direction
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// DefaultPageSize is used when a view is built without an explicit size
const DefaultPageSize = 10

// Column describes one table column. Render produces the human-readable
// cell text; the global filter matches against it. Compare, when set,
// orders rows by the column's typed value instead of its rendered text.
type Column[T any] struct {
	Key     string
	Title   string
	Hidden  bool
	Render  func(T) string
	Compare func(a, b T) int
}

// Config captures the table state driven by user interaction
type Config struct {
	SortKey    string
	SortDir    Direction
	FilterText string
	PageIndex  int
	PageSize   int
}

// Result is the projected page plus the counts pagination controls need.
// TotalFilteredCount is taken after filtering but before pagination.
type Result[T any] struct {
	Rows               []T
	TotalFilteredCount int
	TotalCount         int
}

// Project applies filter, sort, and pagination in that order. It is a
// pure function of its inputs: identical inputs produce identical output.
// A page index beyond the filtered rows yields an empty page, not an error.
func Project[T any](items []T, columns []Column[T], cfg Config) Result[T] {
	rows := filterRows(items, columns, cfg.FilterText)
	filtered := len(rows)

	if col := findColumn(columns, cfg.SortKey); col != nil {
		sortRows(rows, col, cfg.SortDir)
	}

	if cfg.PageSize > 0 {
		start := cfg.PageIndex * cfg.PageSize
		if start >= len(rows) || start < 0 {
			rows = nil
		} else {
			end := min(start+cfg.PageSize, len(rows))
			rows = rows[start:end]
		}
	}

	return Result[T]{
		Rows:               rows,
		TotalFilteredCount: filtered,
		TotalCount:         len(items),
	}
}

func filterRows[T any](items []T, columns []Column[T], filterText string) []T {
	rows := make([]T, 0, len(items))
	if filterText == "" {
		return append(rows, items...)
	}
	fold := cases.Fold()
	needle := fold.String(filterText)
	for _, item := range items {
		for _, col := range columns {
			if col.Hidden || col.Render == nil {
				continue
			}
			if strings.Contains(fold.String(col.Render(item)), needle) {
				rows = append(rows, item)
				break
			}
		}
	}
	return rows
}

func sortRows[T any](rows []T, col *Column[T], dir Direction) {
	compare := col.Compare
	if compare == nil {
		compare = func(a, b T) int {
			return strings.Compare(col.Render(a), col.Render(b))
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		c := compare(rows[i], rows[j])
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
}

func findColumn[T any](columns []Column[T], key string) *Column[T] {
	if key == "" {
		return nil
	}
	for i := range columns {
		if columns[i].Key == key {
			return &columns[i]
		}
	}
	return nil
}
