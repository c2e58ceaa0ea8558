package hr

import (
	"github.com/optibiz/erp/internal/application/tableview"
	"github.com/optibiz/erp/internal/domain/hr"
)

// EmployeeColumns defines the employee table
func EmployeeColumns() []tableview.Column[hr.Employee] {
	return []tableview.Column[hr.Employee]{
		{Key: "name", Title: "Name", Render: hr.Employee.FullName},
		{Key: "position", Title: "Position", Render: func(e hr.Employee) string { return e.Position }},
		{Key: "department", Title: "Department", Render: func(e hr.Employee) string { return e.Department }},
		{Key: "email", Title: "Email", Render: func(e hr.Employee) string { return e.Email }},
		{Key: "joinDate", Title: "Join Date", Render: func(e hr.Employee) string { return e.JoinDate }},
		{
			Key:    "salary",
			Title:  "Salary",
			Render: func(e hr.Employee) string { return "$" + e.Salary.StringFixed(2) },
			Compare: func(a, b hr.Employee) int {
				return a.Salary.Cmp(b.Salary)
			},
		},
		{Key: "status", Title: "Status", Render: func(e hr.Employee) string { return string(e.Status) }},
	}
}

// PayrollColumns defines the payroll run table
func PayrollColumns() []tableview.Column[hr.Payroll] {
	return []tableview.Column[hr.Payroll]{
		{Key: "period", Title: "Period", Render: func(p hr.Payroll) string { return p.PeriodStart + " - " + p.PeriodEnd }},
		{Key: "employee", Title: "Employee", Render: func(p hr.Payroll) string { return p.EmployeeID }},
		{
			Key:    "basicSalary",
			Title:  "Basic Salary",
			Render: func(p hr.Payroll) string { return "$" + p.BasicSalary.StringFixed(2) },
			Compare: func(a, b hr.Payroll) int {
				return a.BasicSalary.Cmp(b.BasicSalary)
			},
		},
		{
			Key:    "allowances",
			Title:  "Allowances",
			Render: func(p hr.Payroll) string { return "$" + p.Allowances.Total().StringFixed(2) },
		},
		{
			Key:    "deductions",
			Title:  "Deductions",
			Render: func(p hr.Payroll) string { return "$" + p.Deductions.Total().StringFixed(2) },
		},
		{
			Key:    "netSalary",
			Title:  "Net Salary",
			Render: func(p hr.Payroll) string { return "$" + p.NetSalary.StringFixed(2) },
			Compare: func(a, b hr.Payroll) int {
				return a.NetSalary.Cmp(b.NetSalary)
			},
		},
		{Key: "status", Title: "Status", Render: func(p hr.Payroll) string { return string(p.Status) }},
		{Key: "paymentDate", Title: "Payment Date", Render: func(p hr.Payroll) string { return p.PaymentDate }},
	}
}
