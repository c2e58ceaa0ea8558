package tableview

// View holds the interactive table state for one widget. The widget
// calls the mutators on user interaction and re-projects afterwards.
type View[T any] struct {
	columns []Column[T]
	cfg     Config
}

// Option adjusts the initial view configuration
type Option func(*Config)

// WithPageSize sets the page size for the view
func WithPageSize(n int) Option {
	return func(c *Config) {
		c.PageSize = n
	}
}

// WithInitialSort sets the sort applied before any user interaction,
// e.g. tickets default to creation date descending
func WithInitialSort(key string, dir Direction) Option {
	return func(c *Config) {
		c.SortKey = key
		c.SortDir = dir
	}
}

// NewView creates a view over the given columns. Without options the
// view starts unsorted, unfiltered, on the first page of DefaultPageSize.
func NewView[T any](columns []Column[T], opts ...Option) *View[T] {
	cfg := Config{PageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &View[T]{columns: columns, cfg: cfg}
}

// SetFilterText updates the global filter. The page index resets to the
// first page so a narrowed result set never shows a blank page.
func (v *View[T]) SetFilterText(text string) {
	v.cfg.FilterText = text
	v.cfg.PageIndex = 0
}

// SetSort updates the sort column and direction
func (v *View[T]) SetSort(key string, dir Direction) {
	v.cfg.SortKey = key
	v.cfg.SortDir = dir
}

// SetPageIndex moves to the given zero-based page
func (v *View[T]) SetPageIndex(i int) {
	v.cfg.PageIndex = i
}

// SetColumnHidden toggles a column's visibility. Hidden columns are
// excluded from filter matching as well as display.
func (v *View[T]) SetColumnHidden(key string, hidden bool) {
	for i := range v.columns {
		if v.columns[i].Key == key {
			v.columns[i].Hidden = hidden
		}
	}
}

// Config returns the current table state
func (v *View[T]) Config() Config {
	return v.cfg
}

// Columns returns the view's column definitions
func (v *View[T]) Columns() []Column[T] {
	return v.columns
}

// Project projects the given collection snapshot through the view state
func (v *View[T]) Project(items []T) Result[T] {
	return Project(items, v.columns, v.cfg)
}
