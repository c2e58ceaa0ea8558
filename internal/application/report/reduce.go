// Package report computes the aggregate dashboard statistics from
// snapshots of the module stores. All reductions are pure and
// side-effect free.
package report

import (
	"sort"
	"time"

	"github.com/optibiz/erp/internal/domain/finance"
	"github.com/optibiz/erp/internal/domain/report"
	"github.com/optibiz/erp/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Count returns the number of records matching the predicate
func Count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// Sum folds the selected values into a total
func Sum[T any](items []T, value func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(value(item))
	}
	return total
}

// Average returns the mean of the selected values. An empty collection
// yields ErrNoData rather than a division by zero.
func Average[T any](items []T, value func(T) decimal.Decimal) (decimal.Decimal, error) {
	if len(items) == 0 {
		return decimal.Zero, shared.ErrNoData
	}
	return Sum(items, value).Div(decimal.NewFromInt(int64(len(items)))), nil
}

// GroupSum accumulates values per key. Keys keep first-encountered order
// from the source collection so chart legend order stays deterministic.
func GroupSum[T any](items []T, key func(T) string, value func(T) decimal.Decimal) []report.CategoryAmount {
	var groups []report.CategoryAmount
	at := make(map[string]int)
	for _, item := range items {
		k := key(item)
		i, seen := at[k]
		if !seen {
			i = len(groups)
			at[k] = i
			groups = append(groups, report.CategoryAmount{Category: k})
		}
		groups[i].Amount = groups[i].Amount.Add(value(item))
	}
	return groups
}

// GroupCount counts records per key, in first-encountered key order
func GroupCount[T any](items []T, key func(T) string) []report.CategoryAmount {
	one := decimal.NewFromInt(1)
	return GroupSum(items, key, func(T) decimal.Decimal { return one })
}

// TopN returns the n smallest records under the given ordering. The sort
// is stable, so ties keep their original collection order.
func TopN[T any](items []T, n int, less func(a, b T) bool) []T {
	ranked := make([]T, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool { return less(ranked[i], ranked[j]) })
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Where returns the records matching the predicate, preserving order
func Where[T any](items []T, pred func(T) bool) []T {
	var out []T
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// CashflowSeries buckets transactions into a trailing daily window ending
// today. All buckets are seeded with zero values before transactions are
// folded in, so days with no activity still appear in the chart.
func CashflowSeries(transactions []finance.Transaction, today time.Time, days int) []report.CashflowPoint {
	if days <= 0 {
		return nil
	}
	points := make([]report.CashflowPoint, days)
	at := make(map[string]int, days)
	for i := 0; i < days; i++ {
		date := shared.FormatDate(today.AddDate(0, 0, i-days+1))
		points[i] = report.CashflowPoint{Date: date}
		at[date] = i
	}
	for _, tx := range transactions {
		i, ok := at[tx.Date]
		if !ok {
			continue
		}
		switch tx.Type {
		case finance.TransactionTypeIncome:
			points[i].Income = points[i].Income.Add(tx.Amount)
		case finance.TransactionTypeExpense:
			points[i].Expense = points[i].Expense.Add(tx.Amount)
		}
	}
	return points
}
