package workplace

import "github.com/shopspring/decimal"

// AssetStatus represents where an asset is in its lifecycle
type AssetStatus string

const (
	AssetStatusInUse     AssetStatus = "in_use"
	AssetStatusInStorage AssetStatus = "in_storage"
	AssetStatusInRepair  AssetStatus = "in_repair"
	AssetStatusDisposed  AssetStatus = "disposed"
)

// AssetCondition represents the physical state of an asset
type AssetCondition string

const (
	AssetConditionExcellent AssetCondition = "excellent"
	AssetConditionGood      AssetCondition = "good"
	AssetConditionFair      AssetCondition = "fair"
	AssetConditionPoor      AssetCondition = "poor"
)

// MaintenanceEvent is one scheduled or completed service on an asset
type MaintenanceEvent struct {
	ID          string
	AssetID     string
	Type        string
	Date        string
	Cost        decimal.Decimal
	Provider    string
	Description string
	Status      string
}

// Depreciation describes how an asset loses value over time
type Depreciation struct {
	Method       string
	Rate         int
	CurrentValue decimal.Decimal
}

// Asset represents a piece of company property
type Asset struct {
	ID                  string
	Name                string
	Category            string
	SerialNumber        string
	PurchaseDate        string
	PurchasePrice       decimal.Decimal
	AssignedTo          string
	Location            string
	Status              AssetStatus
	Condition           AssetCondition
	WarrantyExpiry      string
	MaintenanceSchedule []MaintenanceEvent
	Depreciation        Depreciation
	Notes               string
	Image               string
}

// GetID returns the asset id
func (a Asset) GetID() string {
	return a.ID
}
