package crm

import (
	"github.com/optibiz/erp/internal/application/tableview"
	"github.com/optibiz/erp/internal/domain/crm"
	"github.com/optibiz/erp/internal/store"
)

// CustomerColumns defines the customer table. The global filter matches
// the rendered cells, so searching "business" finds business-type rows
// and a name search matches the concatenated first and last name.
func CustomerColumns() []tableview.Column[crm.Customer] {
	return []tableview.Column[crm.Customer]{
		{Key: "name", Title: "Name", Render: crm.Customer.FullName},
		{Key: "email", Title: "Email", Render: func(c crm.Customer) string { return c.Email }},
		{Key: "phone", Title: "Phone", Render: func(c crm.Customer) string { return c.Phone }},
		{Key: "type", Title: "Type", Render: func(c crm.Customer) string { return string(c.Type) }},
		{Key: "company", Title: "Company", Render: func(c crm.Customer) string { return c.Company }},
		{
			Key:    "totalPurchases",
			Title:  "Total Purchases",
			Render: func(c crm.Customer) string { return "$" + c.TotalPurchases.StringFixed(2) },
			Compare: func(a, b crm.Customer) int {
				return a.TotalPurchases.Cmp(b.TotalPurchases)
			},
		},
		{Key: "status", Title: "Status", Render: func(c crm.Customer) string { return string(c.Status) }},
	}
}

// TicketColumns defines the support ticket table. The customer cell is
// resolved against the customer store; an absent id renders a
// placeholder rather than failing.
func TicketColumns(customers *store.Store[crm.Customer]) []tableview.Column[crm.SupportTicket] {
	return []tableview.Column[crm.SupportTicket]{
		{Key: "subject", Title: "Subject", Render: func(t crm.SupportTicket) string { return t.Subject }},
		{
			Key:   "customer",
			Title: "Customer",
			Render: func(t crm.SupportTicket) string {
				if c, ok := customers.Get(t.CustomerID); ok {
					return c.FullName()
				}
				return "Unknown customer"
			},
		},
		{Key: "category", Title: "Category", Render: func(t crm.SupportTicket) string { return t.Category }},
		{Key: "priority", Title: "Priority", Render: func(t crm.SupportTicket) string { return string(t.Priority) }},
		{Key: "status", Title: "Status", Render: func(t crm.SupportTicket) string { return string(t.Status) }},
		{Key: "createdDate", Title: "Created", Render: func(t crm.SupportTicket) string { return t.CreatedDate }},
	}
}

// NewTicketView builds the ticket table view with its default sort,
// newest tickets first
func NewTicketView(customers *store.Store[crm.Customer], pageSize int) *tableview.View[crm.SupportTicket] {
	return tableview.NewView(TicketColumns(customers),
		tableview.WithPageSize(pageSize),
		tableview.WithInitialSort("createdDate", tableview.Descending))
}
