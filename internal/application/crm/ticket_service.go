package crm

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/optibiz/erp/internal/domain/crm"
	"github.com/optibiz/erp/internal/domain/shared"
	"github.com/optibiz/erp/internal/store"
	"go.uber.org/zap"
)

// TicketService applies create-or-update operations to the support
// ticket collection
type TicketService struct {
	tickets  *store.Store[crm.SupportTicket]
	validate *validator.Validate
	logger   *zap.Logger
	clock    func() time.Time
}

// NewTicketService creates a new TicketService
func NewTicketService(tickets *store.Store[crm.SupportTicket], logger *zap.Logger) *TicketService {
	return &TicketService{
		tickets:  tickets,
		validate: validator.New(),
		logger:   logger,
		clock:    time.Now,
	}
}

// Create opens a new ticket. The status is always "new" regardless of
// input; created and updated dates are set to today.
func (s *TicketService) Create(req CreateTicketRequest) (crm.SupportTicket, error) {
	if err := s.validate.Struct(req); err != nil {
		return crm.SupportTicket{}, shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	if err := crm.ValidateTicketPriority(req.Priority); err != nil {
		return crm.SupportTicket{}, err
	}

	today := shared.FormatDate(s.clock())
	ticket := crm.SupportTicket{
		ID:          s.tickets.NextID(),
		CustomerID:  req.CustomerID,
		Subject:     req.Subject,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      crm.TicketStatusNew,
		AssignedTo:  req.AssignedTo,
		CreatedDate: today,
		UpdatedDate: today,
	}
	if err := s.tickets.Append(ticket); err != nil {
		return crm.SupportTicket{}, err
	}

	s.logger.Info("ticket created",
		zap.String("ticket_id", ticket.ID),
		zap.String("priority", string(ticket.Priority)))
	return ticket, nil
}

// Update merges the present request fields over the existing ticket.
// Every edit moves the updated date to today; moving the status to
// resolved stamps the resolution date.
func (s *TicketService) Update(id string, req UpdateTicketRequest) (crm.SupportTicket, error) {
	ticket, ok := s.tickets.Get(id)
	if !ok {
		return crm.SupportTicket{}, shared.ErrNotFound
	}

	if req.Priority != nil {
		if err := crm.ValidateTicketPriority(*req.Priority); err != nil {
			return crm.SupportTicket{}, err
		}
		ticket.Priority = *req.Priority
	}
	if req.Status != nil {
		if err := crm.ValidateTicketStatus(*req.Status); err != nil {
			return crm.SupportTicket{}, err
		}
		ticket.Status = *req.Status
	}
	setString(&ticket.CustomerID, req.CustomerID)
	setString(&ticket.Subject, req.Subject)
	setString(&ticket.Description, req.Description)
	setString(&ticket.Category, req.Category)
	setString(&ticket.AssignedTo, req.AssignedTo)

	today := shared.FormatDate(s.clock())
	ticket.UpdatedDate = today
	if ticket.Status == crm.TicketStatusResolved && req.Status != nil {
		ticket.ResolvedDate = today
	}

	if err := s.tickets.Replace(id, ticket); err != nil {
		return crm.SupportTicket{}, err
	}

	s.logger.Info("ticket updated",
		zap.String("ticket_id", id),
		zap.String("status", string(ticket.Status)))
	return ticket, nil
}
