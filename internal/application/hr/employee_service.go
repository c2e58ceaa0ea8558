package hr

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/optibiz/erp/internal/domain/hr"
	"github.com/optibiz/erp/internal/domain/shared"
	"github.com/optibiz/erp/internal/store"
	"go.uber.org/zap"
)

// EmployeeService applies create-or-update operations to the employee
// collection
type EmployeeService struct {
	employees *store.Store[hr.Employee]
	validate  *validator.Validate
	logger    *zap.Logger
	clock     func() time.Time
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employees *store.Store[hr.Employee], logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		employees: employees,
		validate:  validator.New(),
		logger:    logger,
		clock:     time.Now,
	}
}

// Create adds a new employee. The join date defaults to today and new
// records start with no documents or performance reviews.
func (s *EmployeeService) Create(req CreateEmployeeRequest) (hr.Employee, error) {
	if err := s.validate.Struct(req); err != nil {
		return hr.Employee{}, shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	status := req.Status
	if status == "" {
		status = hr.EmployeeStatusActive
	}
	if err := hr.ValidateEmployeeStatus(status); err != nil {
		return hr.Employee{}, err
	}
	joinDate := req.JoinDate
	if joinDate == "" {
		joinDate = shared.FormatDate(s.clock())
	}

	employee := hr.Employee{
		ID:               s.employees.NextID(),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Position:         req.Position,
		Department:       req.Department,
		JoinDate:         joinDate,
		Salary:           req.Salary,
		Status:           status,
		Address:          req.Address,
		BankAccount:      req.BankAccount,
		BankName:         req.BankName,
		TaxID:            req.TaxID,
		EmergencyContact: req.EmergencyContact,
		LeaveBalance:     req.LeaveBalance,
	}
	if err := s.employees.Append(employee); err != nil {
		return hr.Employee{}, err
	}

	s.logger.Info("employee created",
		zap.String("employee_id", employee.ID),
		zap.String("department", employee.Department))
	return employee, nil
}

// Update merges the present request fields over the existing employee
func (s *EmployeeService) Update(id string, req UpdateEmployeeRequest) (hr.Employee, error) {
	if err := s.validate.Struct(req); err != nil {
		return hr.Employee{}, shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	employee, ok := s.employees.Get(id)
	if !ok {
		return hr.Employee{}, shared.ErrNotFound
	}

	if req.Status != nil {
		if err := hr.ValidateEmployeeStatus(*req.Status); err != nil {
			return hr.Employee{}, err
		}
		employee.Status = *req.Status
	}
	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.Department != nil {
		employee.Department = *req.Department
	}
	if req.JoinDate != nil {
		employee.JoinDate = *req.JoinDate
	}
	if req.Salary != nil {
		employee.Salary = *req.Salary
	}
	if req.Address != nil {
		employee.Address = *req.Address
	}
	if req.BankAccount != nil {
		employee.BankAccount = *req.BankAccount
	}
	if req.BankName != nil {
		employee.BankName = *req.BankName
	}
	if req.TaxID != nil {
		employee.TaxID = *req.TaxID
	}
	if req.EmergencyContact != nil {
		employee.EmergencyContact = *req.EmergencyContact
	}
	if req.LeaveBalance != nil {
		employee.LeaveBalance = *req.LeaveBalance
	}

	if err := s.employees.Replace(id, employee); err != nil {
		return hr.Employee{}, err
	}

	s.logger.Info("employee updated", zap.String("employee_id", id))
	return employee, nil
}
