package finance

import (
	"github.com/optibiz/erp/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest carries the form values for a new transaction.
// The amount is always positive; direction is carried by the type.
type CreateTransactionRequest struct {
	Date        string
	Type        finance.TransactionType `validate:"required"`
	Category    string                  `validate:"required"`
	Amount      decimal.Decimal         `validate:"required"`
	Account     string                  `validate:"required"`
	Description string
	Reference   string
	Status      finance.TransactionStatus
}

// UpdateTransactionRequest carries a partial record for a transaction edit
type UpdateTransactionRequest struct {
	Date        *string
	Type        *finance.TransactionType
	Category    *string
	Amount      *decimal.Decimal
	Account     *string
	Description *string
	Reference   *string
	Status      *finance.TransactionStatus
}
