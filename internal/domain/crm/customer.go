package crm

import (
	"github.com/optibiz/erp/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CustomerType represents the kind of customer
type CustomerType string

const (
	CustomerTypeIndividual CustomerType = "individual"
	CustomerTypeBusiness   CustomerType = "business"
)

// CustomerStatus represents whether a customer is currently active
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// Customer represents a buyer in the CRM module.
// TotalPurchases and LastPurchase are maintained by editing operations,
// not recomputed from sale history.
type Customer struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Address        string
	City           string
	State          string
	Zip            string
	Country        string
	Type           CustomerType
	Company        string
	JoinDate       string
	Status         CustomerStatus
	TotalPurchases decimal.Decimal
	LastPurchase   string
	LoyaltyPoints  int
	Notes          string
}

// GetID returns the customer id
func (c Customer) GetID() string {
	return c.ID
}

// FullName returns the rendered display name
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// IsBusiness returns true for business customers
func (c Customer) IsBusiness() bool {
	return c.Type == CustomerTypeBusiness
}

// IsActive returns true if the customer is active
func (c Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}

// ValidateCustomerType checks the type against the closed enum set
func ValidateCustomerType(t CustomerType) error {
	switch t {
	case CustomerTypeIndividual, CustomerTypeBusiness:
		return nil
	default:
		return shared.NewDomainError("INVALID_TYPE", "Customer type must be 'individual' or 'business'")
	}
}
