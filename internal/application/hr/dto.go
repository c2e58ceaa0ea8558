package hr

import (
	"github.com/optibiz/erp/internal/domain/hr"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest carries the form values for a new employee
type CreateEmployeeRequest struct {
	FirstName        string          `validate:"required"`
	LastName         string          `validate:"required"`
	Email            string          `validate:"required,email"`
	Phone            string
	Position         string          `validate:"required"`
	Department       string          `validate:"required"`
	JoinDate         string
	Salary           decimal.Decimal `validate:"required"`
	Status           hr.EmployeeStatus
	Address          string
	BankAccount      string
	BankName         string
	TaxID            string
	EmergencyContact hr.EmergencyContact
	LeaveBalance     hr.LeaveBalance
}

// UpdateEmployeeRequest carries a partial record for an employee edit
type UpdateEmployeeRequest struct {
	FirstName        *string
	LastName         *string
	Email            *string `validate:"omitempty,email"`
	Phone            *string
	Position         *string
	Department       *string
	JoinDate         *string
	Salary           *decimal.Decimal
	Status           *hr.EmployeeStatus
	Address          *string
	BankAccount      *string
	BankName         *string
	TaxID            *string
	EmergencyContact *hr.EmergencyContact
	LeaveBalance     *hr.LeaveBalance
}
