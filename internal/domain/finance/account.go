package finance

import "github.com/shopspring/decimal"

// AccountType represents the kind of financial account
type AccountType string

const (
	AccountTypeCash       AccountType = "cash"
	AccountTypeBank       AccountType = "bank"
	AccountTypeCreditCard AccountType = "credit_card"
	AccountTypeOther      AccountType = "other"
)

// AccountStatus represents whether an account is in use
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
)

// Account represents a cash, bank, or credit account.
// Balances may be negative for credit-type accounts.
type Account struct {
	ID             string
	Name           string
	Type           AccountType
	Currency       string
	Balance        decimal.Decimal
	OpeningBalance decimal.Decimal
	OpeningDate    string
	Status         AccountStatus
	Notes          string
}

// GetID returns the account id
func (a Account) GetID() string {
	return a.ID
}

// IsCredit returns true for credit-type accounts
func (a Account) IsCredit() bool {
	return a.Type == AccountTypeCreditCard
}

// NetBalance returns the balance contribution towards total funds.
// Credit-card balances count against the total.
func (a Account) NetBalance() decimal.Decimal {
	if a.IsCredit() {
		return a.Balance.Neg()
	}
	return a.Balance
}
