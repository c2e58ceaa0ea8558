package finance

import (
	"github.com/optibiz/erp/internal/application/tableview"
	"github.com/optibiz/erp/internal/domain/finance"
	"github.com/optibiz/erp/internal/store"
)

// TransactionColumns defines the transaction table. The account cell is
// resolved against the account store; an absent id renders a
// placeholder rather than failing.
func TransactionColumns(accounts *store.Store[finance.Account]) []tableview.Column[finance.Transaction] {
	return []tableview.Column[finance.Transaction]{
		{Key: "date", Title: "Date", Render: func(t finance.Transaction) string { return t.Date }},
		{Key: "type", Title: "Type", Render: func(t finance.Transaction) string { return string(t.Type) }},
		{Key: "category", Title: "Category", Render: func(t finance.Transaction) string { return t.Category }},
		{
			Key:    "amount",
			Title:  "Amount",
			Render: func(t finance.Transaction) string { return "$" + t.Amount.StringFixed(2) },
			Compare: func(a, b finance.Transaction) int {
				return a.Amount.Cmp(b.Amount)
			},
		},
		{
			Key:   "account",
			Title: "Account",
			Render: func(t finance.Transaction) string {
				if a, ok := accounts.Get(t.Account); ok {
					return a.Name
				}
				return "Unknown account"
			},
		},
		{Key: "description", Title: "Description", Render: func(t finance.Transaction) string { return t.Description }},
		{Key: "status", Title: "Status", Render: func(t finance.Transaction) string { return string(t.Status) }},
	}
}

// NewTransactionView builds the transaction table view with its default
// sort, newest entries first
func NewTransactionView(accounts *store.Store[finance.Account], pageSize int) *tableview.View[finance.Transaction] {
	return tableview.NewView(TransactionColumns(accounts),
		tableview.WithPageSize(pageSize),
		tableview.WithInitialSort("date", tableview.Descending))
}
