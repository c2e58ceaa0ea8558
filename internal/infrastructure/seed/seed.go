// Package seed provides the demo dataset the application boots with.
// Every collection here mirrors the optibiz electronics store: one
// function per entity type, returning fresh slices so callers can
// mutate their copies freely.
package seed

import "github.com/shopspring/decimal"

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}
