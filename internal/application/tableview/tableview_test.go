package tableview

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name string
	Age  int
	Kind string
}

func personColumns() []Column[person] {
	return []Column[person]{
		{Key: "name", Title: "Name", Render: func(p person) string { return p.Name }},
		{
			Key:    "age",
			Title:  "Age",
			Render: func(p person) string { return strconv.Itoa(p.Age) },
			Compare: func(a, b person) int {
				return a.Age - b.Age
			},
		},
		{Key: "kind", Title: "Kind", Render: func(p person) string { return p.Kind }},
	}
}

func people() []person {
	return []person{
		{Name: "Dana", Age: 4, Kind: "individual"},
		{Name: "Alex", Age: 2, Kind: "business"},
		{Name: "Casey", Age: 3, Kind: "business"},
		{Name: "Blake", Age: 1, Kind: "individual"},
	}
}

func TestProject(t *testing.T) {
	t.Run("empty filter keeps every row", func(t *testing.T) {
		result := Project(people(), personColumns(), Config{})
		assert.Equal(t, len(people()), result.TotalFilteredCount)
		assert.Equal(t, len(people()), result.TotalCount)
		assert.Len(t, result.Rows, len(people()))
	})

	t.Run("unsorted projection keeps insertion order", func(t *testing.T) {
		result := Project(people(), personColumns(), Config{})
		assert.Equal(t, "Dana", result.Rows[0].Name)
		assert.Equal(t, "Blake", result.Rows[3].Name)
	})

	t.Run("descending reverses ascending", func(t *testing.T) {
		asc := Project(people(), personColumns(), Config{SortKey: "age", SortDir: Ascending})
		desc := Project(people(), personColumns(), Config{SortKey: "age", SortDir: Descending})
		require.Len(t, asc.Rows, 4)
		for i := range asc.Rows {
			assert.Equal(t, asc.Rows[i].Name, desc.Rows[len(desc.Rows)-1-i].Name)
		}
	})

	t.Run("projection is idempotent", func(t *testing.T) {
		cfg := Config{SortKey: "name", SortDir: Ascending, FilterText: "a", PageSize: 2}
		first := Project(people(), personColumns(), cfg)
		second := Project(people(), personColumns(), cfg)
		assert.Equal(t, first, second)
	})

	t.Run("filter matches case insensitively", func(t *testing.T) {
		result := Project(people(), personColumns(), Config{FilterText: "BUSINESS"})
		assert.Equal(t, 2, result.TotalFilteredCount)
	})

	t.Run("filter counts before pagination", func(t *testing.T) {
		result := Project(people(), personColumns(), Config{FilterText: "business", PageSize: 1})
		assert.Equal(t, 2, result.TotalFilteredCount)
		assert.Len(t, result.Rows, 1)
		assert.Equal(t, 4, result.TotalCount)
	})

	t.Run("page beyond the filtered rows is empty", func(t *testing.T) {
		result := Project(people(), personColumns(), Config{PageIndex: 5, PageSize: 2})
		assert.Empty(t, result.Rows)
		assert.Equal(t, 4, result.TotalFilteredCount)
	})

	t.Run("zero page size disables pagination", func(t *testing.T) {
		result := Project(people(), personColumns(), Config{PageSize: 0})
		assert.Len(t, result.Rows, 4)
	})

	t.Run("hidden columns do not match the filter", func(t *testing.T) {
		columns := personColumns()
		columns[2].Hidden = true
		result := Project(people(), columns, Config{FilterText: "business"})
		assert.Zero(t, result.TotalFilteredCount)
	})

	t.Run("sort without Compare falls back to rendered text", func(t *testing.T) {
		result := Project(people(), personColumns(), Config{SortKey: "name", SortDir: Ascending})
		assert.Equal(t, "Alex", result.Rows[0].Name)
		assert.Equal(t, "Dana", result.Rows[3].Name)
	})

	t.Run("sort is stable for equal keys", func(t *testing.T) {
		items := []person{
			{Name: "x", Age: 1, Kind: "same"},
			{Name: "y", Age: 1, Kind: "same"},
			{Name: "z", Age: 1, Kind: "same"},
		}
		result := Project(items, personColumns(), Config{SortKey: "age", SortDir: Ascending})
		assert.Equal(t, "x", result.Rows[0].Name)
		assert.Equal(t, "y", result.Rows[1].Name)
		assert.Equal(t, "z", result.Rows[2].Name)
	})

	t.Run("unknown sort key leaves order untouched", func(t *testing.T) {
		result := Project(people(), personColumns(), Config{SortKey: "nope", SortDir: Ascending})
		assert.Equal(t, "Dana", result.Rows[0].Name)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		items := people()
		Project(items, personColumns(), Config{SortKey: "age", SortDir: Ascending})
		assert.Equal(t, "Dana", items[0].Name)
	})
}

func TestView(t *testing.T) {
	t.Run("changing the filter resets the page", func(t *testing.T) {
		view := NewView(personColumns(), WithPageSize(2))
		view.SetPageIndex(1)
		view.SetFilterText("business")
		assert.Zero(t, view.Config().PageIndex)
		result := view.Project(people())
		assert.Len(t, result.Rows, 2)
	})

	t.Run("initial sort option applies before interaction", func(t *testing.T) {
		view := NewView(personColumns(), WithInitialSort("age", Descending))
		result := view.Project(people())
		assert.Equal(t, "Dana", result.Rows[0].Name)
	})

	t.Run("hiding a column removes it from matching", func(t *testing.T) {
		view := NewView(personColumns())
		view.SetColumnHidden("kind", true)
		view.SetFilterText("business")
		assert.Zero(t, view.Project(people()).TotalFilteredCount)

		view.SetColumnHidden("kind", false)
		assert.Equal(t, 2, view.Project(people()).TotalFilteredCount)
	})

	t.Run("defaults to DefaultPageSize", func(t *testing.T) {
		view := NewView(personColumns())
		assert.Equal(t, DefaultPageSize, view.Config().PageSize)
	})
}
