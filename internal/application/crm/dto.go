package crm

import (
	"github.com/optibiz/erp/internal/domain/crm"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest carries the form values for a new customer.
// The form layer validates these before the editor applies them.
type CreateCustomerRequest struct {
	FirstName string           `validate:"required"`
	LastName  string           `validate:"required"`
	Email     string           `validate:"required,email"`
	Phone     string           `validate:"omitempty,max=50"`
	Address   string
	City      string
	State     string
	Zip       string
	Country   string
	Type      crm.CustomerType `validate:"required"`
	Company   string
	Status    crm.CustomerStatus
	Notes     string
}

// UpdateCustomerRequest carries a partial record for an edit. Nil fields
// keep their prior values; present fields overwrite them.
type UpdateCustomerRequest struct {
	FirstName      *string
	LastName       *string
	Email          *string `validate:"omitempty,email"`
	Phone          *string
	Address        *string
	City           *string
	State          *string
	Zip            *string
	Country        *string
	Type           *crm.CustomerType
	Company        *string
	Status         *crm.CustomerStatus
	TotalPurchases *decimal.Decimal
	LastPurchase   *string
	LoyaltyPoints  *int
	Notes          *string
}

// CreateTicketRequest carries the form values for a new support ticket.
// New tickets always start in the "new" status regardless of input.
type CreateTicketRequest struct {
	CustomerID  string             `validate:"required"`
	Subject     string             `validate:"required"`
	Description string             `validate:"required"`
	Category    string             `validate:"required"`
	Priority    crm.TicketPriority `validate:"required"`
	AssignedTo  string
}

// UpdateTicketRequest carries a partial record for a ticket edit
type UpdateTicketRequest struct {
	CustomerID  *string
	Subject     *string
	Description *string
	Category    *string
	Priority    *crm.TicketPriority
	Status      *crm.TicketStatus
	AssignedTo  *string
}
