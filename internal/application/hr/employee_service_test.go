package hr

import (
	"errors"
	"testing"
	"time"

	"github.com/optibiz/erp/internal/domain/hr"
	"github.com/optibiz/erp/internal/domain/shared"
	"github.com/optibiz/erp/internal/infrastructure/seed"
	"github.com/optibiz/erp/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEmployeeService() (*EmployeeService, *store.Store[hr.Employee]) {
	employees := store.MustNew("emp", seed.Employees())
	s := NewEmployeeService(employees, zap.NewNop())
	s.clock = func() time.Time {
		return time.Date(2023, 9, 21, 10, 30, 0, 0, time.UTC)
	}
	return s, employees
}

func TestEmployeeCreate(t *testing.T) {
	t.Run("defaults status and join date", func(t *testing.T) {
		s, employees := newEmployeeService()

		created, err := s.Create(CreateEmployeeRequest{
			FirstName:  "Laura",
			LastName:   "Chen",
			Email:      "laura.chen@optibiz.com",
			Position:   "Accountant",
			Department: "Finance",
			Salary:     decimal.NewFromInt(41000),
		})
		require.NoError(t, err)

		assert.Equal(t, "emp6", created.ID)
		assert.Equal(t, hr.EmployeeStatusActive, created.Status)
		assert.Equal(t, "2023-09-21", created.JoinDate)
		assert.Empty(t, created.PerformanceReviews)
		assert.Equal(t, 6, employees.Len())
	})

	t.Run("keeps an explicit join date", func(t *testing.T) {
		s, _ := newEmployeeService()
		created, err := s.Create(CreateEmployeeRequest{
			FirstName:  "Laura",
			LastName:   "Chen",
			Email:      "laura.chen@optibiz.com",
			Position:   "Accountant",
			Department: "Finance",
			JoinDate:   "2023-08-01",
			Salary:     decimal.NewFromInt(41000),
		})
		require.NoError(t, err)
		assert.Equal(t, "2023-08-01", created.JoinDate)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		s, employees := newEmployeeService()
		_, err := s.Create(CreateEmployeeRequest{
			FirstName:  "Laura",
			LastName:   "Chen",
			Email:      "not-an-email",
			Position:   "Accountant",
			Department: "Finance",
			Salary:     decimal.NewFromInt(41000),
		})
		assert.Error(t, err)
		assert.Equal(t, 5, employees.Len())
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		s, _ := newEmployeeService()
		_, err := s.Create(CreateEmployeeRequest{
			FirstName:  "Laura",
			LastName:   "Chen",
			Email:      "laura.chen@optibiz.com",
			Position:   "Accountant",
			Department: "Finance",
			Salary:     decimal.NewFromInt(41000),
			Status:     hr.EmployeeStatus("retired"),
		})
		assert.Error(t, err)
	})
}

func TestEmployeeUpdate(t *testing.T) {
	t.Run("merges only the present fields", func(t *testing.T) {
		s, employees := newEmployeeService()
		salary := decimal.NewFromInt(48000)
		position := "Regional Manager"

		updated, err := s.Update("emp1", UpdateEmployeeRequest{
			Salary:   &salary,
			Position: &position,
		})
		require.NoError(t, err)

		assert.Equal(t, "48000", updated.Salary.String())
		assert.Equal(t, "Regional Manager", updated.Position)
		assert.Equal(t, "John", updated.FirstName)
		assert.Equal(t, "Sales", updated.Department)

		stored, ok := employees.Get("emp1")
		require.True(t, ok)
		assert.Equal(t, updated, stored)
	})

	t.Run("moves an employee on leave back to active", func(t *testing.T) {
		s, _ := newEmployeeService()
		active := hr.EmployeeStatusActive
		updated, err := s.Update("emp4", UpdateEmployeeRequest{Status: &active})
		require.NoError(t, err)
		assert.Equal(t, hr.EmployeeStatusActive, updated.Status)
	})

	t.Run("replaces the leave balance wholesale", func(t *testing.T) {
		s, _ := newEmployeeService()
		balance := hr.LeaveBalance{Annual: 20, Sick: 10, Unpaid: 5}
		updated, err := s.Update("emp2", UpdateEmployeeRequest{LeaveBalance: &balance})
		require.NoError(t, err)
		assert.Equal(t, balance, updated.LeaveBalance)
	})

	t.Run("missing id is not found", func(t *testing.T) {
		s, employees := newEmployeeService()
		before := employees.Len()
		name := "Ghost"
		_, err := s.Update("emp999", UpdateEmployeeRequest{FirstName: &name})
		assert.True(t, errors.Is(err, shared.ErrNotFound))
		assert.Equal(t, before, employees.Len())
	})
}
