package hr

import (
	"github.com/optibiz/erp/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EmployeeStatus represents the employment status of an employee
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
	EmployeeStatusOnLeave  EmployeeStatus = "onLeave"
)

// EmergencyContact is the person to reach in case of emergency
type EmergencyContact struct {
	Name         string
	Relationship string
	Phone        string
}

// LeaveBalance tracks the remaining leave days per leave type
type LeaveBalance struct {
	Annual int
	Sick   int
	Unpaid int
}

// PerformanceReview records a periodic evaluation of an employee
type PerformanceReview struct {
	ID         string
	EmployeeID string
	ReviewerID string
	Date       string
	Rating     decimal.Decimal
	Strengths  []string
	Weaknesses []string
	Goals      []string
	Comments   string
}

// Employee represents a member of staff in the HR module
type Employee struct {
	ID                 string
	FirstName          string
	LastName           string
	Email              string
	Phone              string
	Position           string
	Department         string
	JoinDate           string
	Salary             decimal.Decimal
	Status             EmployeeStatus
	Address            string
	Avatar             string
	BankAccount        string
	BankName           string
	TaxID              string
	EmergencyContact   EmergencyContact
	Documents          []string
	PerformanceReviews []PerformanceReview
	LeaveBalance       LeaveBalance
}

// GetID returns the employee id
func (e Employee) GetID() string {
	return e.ID
}

// FullName returns the rendered display name
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// IsActive returns true if the employee is currently active
func (e Employee) IsActive() bool {
	return e.Status == EmployeeStatusActive
}

// IsOnLeave returns true if the employee is currently on leave
func (e Employee) IsOnLeave() bool {
	return e.Status == EmployeeStatusOnLeave
}

// ValidateEmployeeStatus checks the status against the closed enum set
func ValidateEmployeeStatus(s EmployeeStatus) error {
	switch s {
	case EmployeeStatusActive, EmployeeStatusInactive, EmployeeStatusOnLeave:
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Employee status must be 'active', 'inactive', or 'onLeave'")
	}
}
