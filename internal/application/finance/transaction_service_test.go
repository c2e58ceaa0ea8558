package finance

import (
	"errors"
	"testing"
	"time"

	"github.com/optibiz/erp/internal/domain/finance"
	"github.com/optibiz/erp/internal/domain/shared"
	"github.com/optibiz/erp/internal/infrastructure/seed"
	"github.com/optibiz/erp/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTransactionService() (*TransactionService, *store.Store[finance.Transaction]) {
	transactions := store.MustNew("tr", seed.Transactions())
	s := NewTransactionService(transactions, zap.NewNop())
	s.clock = func() time.Time {
		return time.Date(2023, 9, 21, 10, 30, 0, 0, time.UTC)
	}
	return s, transactions
}

func TestTransactionCreate(t *testing.T) {
	t.Run("defaults date and status", func(t *testing.T) {
		s, transactions := newTransactionService()

		created, err := s.Create(CreateTransactionRequest{
			Type:     finance.TransactionTypeExpense,
			Category: "Utilities",
			Amount:   decimal.NewFromFloat(312.40),
			Account:  "acc1",
		})
		require.NoError(t, err)

		assert.Equal(t, "tr9", created.ID)
		assert.Equal(t, "2023-09-21", created.Date)
		assert.Equal(t, finance.TransactionStatusPending, created.Status)
		assert.Equal(t, 9, transactions.Len())
	})

	t.Run("keeps an explicit date and status", func(t *testing.T) {
		s, _ := newTransactionService()
		created, err := s.Create(CreateTransactionRequest{
			Date:     "2023-09-01",
			Type:     finance.TransactionTypeIncome,
			Category: "Sales",
			Amount:   decimal.NewFromInt(100),
			Account:  "acc1",
			Status:   finance.TransactionStatusCompleted,
		})
		require.NoError(t, err)
		assert.Equal(t, "2023-09-01", created.Date)
		assert.Equal(t, finance.TransactionStatusCompleted, created.Status)
	})

	t.Run("amount must be positive", func(t *testing.T) {
		s, transactions := newTransactionService()
		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-50)} {
			_, err := s.Create(CreateTransactionRequest{
				Type:     finance.TransactionTypeExpense,
				Category: "Utilities",
				Amount:   amount,
				Account:  "acc1",
			})
			require.Error(t, err)
			var domainErr *shared.DomainError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)
		}
		assert.Equal(t, 8, transactions.Len())
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		s, _ := newTransactionService()
		_, err := s.Create(CreateTransactionRequest{
			Type:     finance.TransactionType("refund"),
			Category: "Sales",
			Amount:   decimal.NewFromInt(10),
			Account:  "acc1",
		})
		assert.Error(t, err)
	})
}

func TestTransactionUpdate(t *testing.T) {
	t.Run("merges only the present fields", func(t *testing.T) {
		s, transactions := newTransactionService()
		category := "Office Supplies"
		updated, err := s.Update("tr5", UpdateTransactionRequest{Category: &category})
		require.NoError(t, err)
		assert.Equal(t, "Office Supplies", updated.Category)
		assert.Equal(t, finance.TransactionTypeExpense, updated.Type)

		stored, ok := transactions.Get("tr5")
		require.True(t, ok)
		assert.Equal(t, updated, stored)
	})

	t.Run("amount must stay positive", func(t *testing.T) {
		s, transactions := newTransactionService()
		original, ok := transactions.Get("tr1")
		require.True(t, ok)

		zero := decimal.Zero
		_, err := s.Update("tr1", UpdateTransactionRequest{Amount: &zero})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)

		stored, _ := transactions.Get("tr1")
		assert.Equal(t, original.Amount, stored.Amount)
	})

	t.Run("rejects an unknown type change", func(t *testing.T) {
		s, _ := newTransactionService()
		bad := finance.TransactionType("refund")
		_, err := s.Update("tr1", UpdateTransactionRequest{Type: &bad})
		assert.Error(t, err)
	})

	t.Run("missing id is not found", func(t *testing.T) {
		s, _ := newTransactionService()
		category := "ghost"
		_, err := s.Update("tr999", UpdateTransactionRequest{Category: &category})
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}
