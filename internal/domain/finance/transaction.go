package finance

import (
	"github.com/optibiz/erp/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a transaction.
// Amounts are always positive; direction is carried by the type.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// TransactionStatus represents the settlement state of a transaction
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction represents a single income or expense entry
type Transaction struct {
	ID          string
	Date        string
	Type        TransactionType
	Category    string
	Amount      decimal.Decimal
	Account     string
	Description string
	Reference   string
	Status      TransactionStatus
	Attachments []string
}

// GetID returns the transaction id
func (t Transaction) GetID() string {
	return t.ID
}

// IsIncome returns true for income transactions
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense returns true for expense transactions
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// ValidateTransactionType checks the type against the closed enum set
func ValidateTransactionType(t TransactionType) error {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense:
		return nil
	default:
		return shared.NewDomainError("INVALID_TYPE", "Transaction type must be 'income' or 'expense'")
	}
}
