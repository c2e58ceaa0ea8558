package crm

import (
	"errors"
	"testing"
	"time"

	"github.com/optibiz/erp/internal/domain/crm"
	"github.com/optibiz/erp/internal/domain/shared"
	"github.com/optibiz/erp/internal/infrastructure/seed"
	"github.com/optibiz/erp/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testDay = time.Date(2023, 9, 21, 10, 30, 0, 0, time.UTC)

func newCustomerService() (*CustomerService, *store.Store[crm.Customer]) {
	customers := store.MustNew("cust", seed.Customers())
	s := NewCustomerService(customers, zap.NewNop())
	s.clock = func() time.Time { return testDay }
	return s, customers
}

func TestCustomerCreate(t *testing.T) {
	t.Run("appends with a fresh id and defaults", func(t *testing.T) {
		s, customers := newCustomerService()
		before := customers.Len()

		created, err := s.Create(CreateCustomerRequest{
			FirstName: "Nina",
			LastName:  "Lopez",
			Email:     "nina.lopez@email.com",
			Type:      crm.CustomerTypeIndividual,
		})
		require.NoError(t, err)

		assert.Equal(t, "cust9", created.ID)
		assert.Equal(t, before+1, customers.Len())
		assert.Equal(t, crm.CustomerStatusActive, created.Status)
		assert.Equal(t, "2023-09-21", created.JoinDate)
		assert.True(t, created.TotalPurchases.IsZero())
		assert.Zero(t, created.LoyaltyPoints)
	})

	t.Run("rejects a missing email", func(t *testing.T) {
		s, customers := newCustomerService()
		before := customers.Len()

		_, err := s.Create(CreateCustomerRequest{
			FirstName: "Nina",
			LastName:  "Lopez",
			Type:      crm.CustomerTypeIndividual,
		})
		assert.Error(t, err)
		assert.Equal(t, before, customers.Len())
	})

	t.Run("rejects an unknown customer type", func(t *testing.T) {
		s, _ := newCustomerService()
		_, err := s.Create(CreateCustomerRequest{
			FirstName: "Nina",
			LastName:  "Lopez",
			Email:     "nina.lopez@email.com",
			Type:      crm.CustomerType("franchise"),
		})
		assert.Error(t, err)
	})

	t.Run("ids stay unique across creates", func(t *testing.T) {
		s, _ := newCustomerService()
		a, err := s.Create(CreateCustomerRequest{
			FirstName: "A", LastName: "A", Email: "a@email.com", Type: crm.CustomerTypeIndividual,
		})
		require.NoError(t, err)
		b, err := s.Create(CreateCustomerRequest{
			FirstName: "B", LastName: "B", Email: "b@email.com", Type: crm.CustomerTypeIndividual,
		})
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestCustomerUpdate(t *testing.T) {
	t.Run("merges only the present fields", func(t *testing.T) {
		s, customers := newCustomerService()
		phone := "+1-555-000-0000"
		points := 500

		updated, err := s.Update("cust1", UpdateCustomerRequest{
			Phone:         &phone,
			LoyaltyPoints: &points,
		})
		require.NoError(t, err)

		assert.Equal(t, phone, updated.Phone)
		assert.Equal(t, points, updated.LoyaltyPoints)
		// untouched fields survive the merge
		assert.Equal(t, "Robert", updated.FirstName)
		assert.Equal(t, "2450.75", updated.TotalPurchases.StringFixed(2))

		stored, ok := customers.Get("cust1")
		require.True(t, ok)
		assert.Equal(t, updated, stored)
	})

	t.Run("leaves other records untouched", func(t *testing.T) {
		s, customers := newCustomerService()
		name := "Changed"
		_, err := s.Update("cust2", UpdateCustomerRequest{FirstName: &name})
		require.NoError(t, err)

		other, ok := customers.Get("cust3")
		require.True(t, ok)
		assert.Equal(t, "Michael", other.FirstName)
	})

	t.Run("keeps the record position", func(t *testing.T) {
		s, customers := newCustomerService()
		name := "Changed"
		_, err := s.Update("cust2", UpdateCustomerRequest{FirstName: &name})
		require.NoError(t, err)
		assert.Equal(t, "cust2", customers.Snapshot()[1].ID)
	})

	t.Run("updates the denormalized purchase total", func(t *testing.T) {
		s, _ := newCustomerService()
		total := decimal.NewFromFloat(9999.99)
		updated, err := s.Update("cust4", UpdateCustomerRequest{TotalPurchases: &total})
		require.NoError(t, err)
		assert.Equal(t, "9999.99", updated.TotalPurchases.StringFixed(2))
	})

	t.Run("missing id is not found, never a create", func(t *testing.T) {
		s, customers := newCustomerService()
		before := customers.Len()
		name := "Ghost"
		_, err := s.Update("cust999", UpdateCustomerRequest{FirstName: &name})
		assert.True(t, errors.Is(err, shared.ErrNotFound))
		assert.Equal(t, before, customers.Len())
	})

	t.Run("rejects an invalid type change", func(t *testing.T) {
		s, customers := newCustomerService()
		bad := crm.CustomerType("franchise")
		_, err := s.Update("cust1", UpdateCustomerRequest{Type: &bad})
		assert.Error(t, err)

		stored, _ := customers.Get("cust1")
		assert.Equal(t, crm.CustomerTypeIndividual, stored.Type)
	})
}
