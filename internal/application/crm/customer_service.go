package crm

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/optibiz/erp/internal/domain/crm"
	"github.com/optibiz/erp/internal/domain/shared"
	"github.com/optibiz/erp/internal/store"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CustomerService applies create-or-update operations to the customer
// collection. A failed save leaves the prior collection state intact.
type CustomerService struct {
	customers *store.Store[crm.Customer]
	validate  *validator.Validate
	logger    *zap.Logger
	clock     func() time.Time
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customers *store.Store[crm.Customer], logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customers: customers,
		validate:  validator.New(),
		logger:    logger,
		clock:     time.Now,
	}
}

// Create adds a new customer. Required fields absent from the form get
// their module defaults: zero purchases, zero loyalty points, joined today.
func (s *CustomerService) Create(req CreateCustomerRequest) (crm.Customer, error) {
	if err := s.validate.Struct(req); err != nil {
		return crm.Customer{}, shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	if err := crm.ValidateCustomerType(req.Type); err != nil {
		return crm.Customer{}, err
	}
	status := req.Status
	if status == "" {
		status = crm.CustomerStatusActive
	}

	customer := crm.Customer{
		ID:             s.customers.NextID(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		Zip:            req.Zip,
		Country:        req.Country,
		Type:           req.Type,
		Company:        req.Company,
		JoinDate:       shared.FormatDate(s.clock()),
		Status:         status,
		TotalPurchases: decimal.Zero,
		LoyaltyPoints:  0,
		Notes:          req.Notes,
	}
	if err := s.customers.Append(customer); err != nil {
		return crm.Customer{}, err
	}

	s.logger.Info("customer created",
		zap.String("customer_id", customer.ID),
		zap.String("type", string(customer.Type)))
	return customer, nil
}

// Update merges the present request fields over the existing customer.
// A missing id is a caller error, never treated as a create.
func (s *CustomerService) Update(id string, req UpdateCustomerRequest) (crm.Customer, error) {
	if err := s.validate.Struct(req); err != nil {
		return crm.Customer{}, shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	customer, ok := s.customers.Get(id)
	if !ok {
		return crm.Customer{}, shared.ErrNotFound
	}

	if req.Type != nil {
		if err := crm.ValidateCustomerType(*req.Type); err != nil {
			return crm.Customer{}, err
		}
		customer.Type = *req.Type
	}
	setString(&customer.FirstName, req.FirstName)
	setString(&customer.LastName, req.LastName)
	setString(&customer.Email, req.Email)
	setString(&customer.Phone, req.Phone)
	setString(&customer.Address, req.Address)
	setString(&customer.City, req.City)
	setString(&customer.State, req.State)
	setString(&customer.Zip, req.Zip)
	setString(&customer.Country, req.Country)
	setString(&customer.Company, req.Company)
	setString(&customer.LastPurchase, req.LastPurchase)
	setString(&customer.Notes, req.Notes)
	if req.Status != nil {
		customer.Status = *req.Status
	}
	if req.TotalPurchases != nil {
		customer.TotalPurchases = *req.TotalPurchases
	}
	if req.LoyaltyPoints != nil {
		customer.LoyaltyPoints = *req.LoyaltyPoints
	}

	if err := s.customers.Replace(id, customer); err != nil {
		return crm.Customer{}, err
	}

	s.logger.Info("customer updated", zap.String("customer_id", id))
	return customer, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
