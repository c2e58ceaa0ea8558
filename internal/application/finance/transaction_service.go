package finance

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/optibiz/erp/internal/domain/finance"
	"github.com/optibiz/erp/internal/domain/shared"
	"github.com/optibiz/erp/internal/store"
	"go.uber.org/zap"
)

// TransactionService applies create-or-update operations to the
// transaction collection
type TransactionService struct {
	transactions *store.Store[finance.Transaction]
	validate     *validator.Validate
	logger       *zap.Logger
	clock        func() time.Time
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactions *store.Store[finance.Transaction], logger *zap.Logger) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		validate:     validator.New(),
		logger:       logger,
		clock:        time.Now,
	}
}

// Create adds a new transaction. The date defaults to today and the
// status to pending.
func (s *TransactionService) Create(req CreateTransactionRequest) (finance.Transaction, error) {
	if err := s.validate.Struct(req); err != nil {
		return finance.Transaction{}, shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	if err := finance.ValidateTransactionType(req.Type); err != nil {
		return finance.Transaction{}, err
	}
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return finance.Transaction{}, shared.NewDomainError("INVALID_AMOUNT", "Transaction amount must be positive")
	}
	date := req.Date
	if date == "" {
		date = shared.FormatDate(s.clock())
	}
	status := req.Status
	if status == "" {
		status = finance.TransactionStatusPending
	}

	tx := finance.Transaction{
		ID:          s.transactions.NextID(),
		Date:        date,
		Type:        req.Type,
		Category:    req.Category,
		Amount:      req.Amount,
		Account:     req.Account,
		Description: req.Description,
		Reference:   req.Reference,
		Status:      status,
	}
	if err := s.transactions.Append(tx); err != nil {
		return finance.Transaction{}, err
	}

	s.logger.Info("transaction created",
		zap.String("transaction_id", tx.ID),
		zap.String("type", string(tx.Type)),
		zap.String("amount", tx.Amount.String()))
	return tx, nil
}

// Update merges the present request fields over the existing transaction
func (s *TransactionService) Update(id string, req UpdateTransactionRequest) (finance.Transaction, error) {
	tx, ok := s.transactions.Get(id)
	if !ok {
		return finance.Transaction{}, shared.ErrNotFound
	}

	if req.Type != nil {
		if err := finance.ValidateTransactionType(*req.Type); err != nil {
			return finance.Transaction{}, err
		}
		tx.Type = *req.Type
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() || req.Amount.IsZero() {
			return finance.Transaction{}, shared.NewDomainError("INVALID_AMOUNT", "Transaction amount must be positive")
		}
		tx.Amount = *req.Amount
	}
	if req.Date != nil {
		tx.Date = *req.Date
	}
	if req.Category != nil {
		tx.Category = *req.Category
	}
	if req.Account != nil {
		tx.Account = *req.Account
	}
	if req.Description != nil {
		tx.Description = *req.Description
	}
	if req.Reference != nil {
		tx.Reference = *req.Reference
	}
	if req.Status != nil {
		tx.Status = *req.Status
	}

	if err := s.transactions.Replace(id, tx); err != nil {
		return finance.Transaction{}, err
	}

	s.logger.Info("transaction updated", zap.String("transaction_id", id))
	return tx, nil
}
