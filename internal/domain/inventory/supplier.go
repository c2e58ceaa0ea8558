package inventory

// SupplierStatus represents whether a supplier is currently used
type SupplierStatus string

const (
	SupplierStatusActive   SupplierStatus = "active"
	SupplierStatusInactive SupplierStatus = "inactive"
)

// Supplier represents a vendor that products are purchased from
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	TaxID         string
	PaymentTerms  string
	Rating        int
	Status        SupplierStatus
	Products      []string
}

// GetID returns the supplier id
func (s Supplier) GetID() string {
	return s.ID
}

// IsActive returns true if the supplier is active
func (s Supplier) IsActive() bool {
	return s.Status == SupplierStatusActive
}
