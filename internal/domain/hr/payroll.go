package hr

import "github.com/shopspring/decimal"

// PayrollStatus represents the processing state of a payroll run
type PayrollStatus string

const (
	PayrollStatusDraft     PayrollStatus = "draft"
	PayrollStatusProcessed PayrollStatus = "processed"
	PayrollStatusPaid      PayrollStatus = "paid"
)

// PaymentMethod represents how a salary is disbursed
type PaymentMethod string

const (
	PaymentMethodBank  PaymentMethod = "bank"
	PaymentMethodCash  PaymentMethod = "cash"
	PaymentMethodOther PaymentMethod = "other"
)

// Allowances is the allowance breakdown of a payroll record
type Allowances struct {
	Housing   decimal.Decimal
	Transport decimal.Decimal
	Meal      decimal.Decimal
	Other     decimal.Decimal
}

// Deductions is the deduction breakdown of a payroll record
type Deductions struct {
	Tax       decimal.Decimal
	Insurance decimal.Decimal
	Pension   decimal.Decimal
	Loans     decimal.Decimal
	Other     decimal.Decimal
}

// Payroll represents one salary period for one employee
type Payroll struct {
	ID            string
	EmployeeID    string
	PeriodStart   string
	PeriodEnd     string
	BasicSalary   decimal.Decimal
	Allowances    Allowances
	Deductions    Deductions
	NetSalary     decimal.Decimal
	Status        PayrollStatus
	PaymentDate   string
	PaymentMethod PaymentMethod
}

// GetID returns the payroll id
func (p Payroll) GetID() string {
	return p.ID
}

// Total sums the allowance breakdown
func (a Allowances) Total() decimal.Decimal {
	return a.Housing.Add(a.Transport).Add(a.Meal).Add(a.Other)
}

// Total sums the deduction breakdown
func (d Deductions) Total() decimal.Decimal {
	return d.Tax.Add(d.Insurance).Add(d.Pension).Add(d.Loans).Add(d.Other)
}
