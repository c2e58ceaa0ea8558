package crm

import "github.com/optibiz/erp/internal/domain/shared"

// TicketPriority represents how urgent a support ticket is
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// TicketStatus represents the handling state of a support ticket
type TicketStatus string

const (
	TicketStatusNew        TicketStatus = "new"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusWaiting    TicketStatus = "waiting"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// Comment is a note added to a ticket by a user
type Comment struct {
	ID        string
	TicketID  string
	UserID    string
	Content   string
	Timestamp string
}

// SupportTicket represents a customer support request.
// CustomerID references the customer collection; lookups must tolerate
// the referenced id being absent.
type SupportTicket struct {
	ID           string
	CustomerID   string
	Subject      string
	Description  string
	Category     string
	Priority     TicketPriority
	Status       TicketStatus
	AssignedTo   string
	CreatedDate  string
	UpdatedDate  string
	ResolvedDate string
	Comments     []Comment
	Attachments  []string
}

// GetID returns the ticket id
func (t SupportTicket) GetID() string {
	return t.ID
}

// IsOpen returns true while the ticket still needs attention
func (t SupportTicket) IsOpen() bool {
	switch t.Status {
	case TicketStatusNew, TicketStatusInProgress, TicketStatusWaiting:
		return true
	}
	return false
}

// IsResolved returns true once the ticket has been resolved or closed
func (t SupportTicket) IsResolved() bool {
	return t.Status == TicketStatusResolved || t.Status == TicketStatusClosed
}

// ValidateTicketPriority checks the priority against the closed enum set
func ValidateTicketPriority(p TicketPriority) error {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return nil
	default:
		return shared.NewDomainError("INVALID_PRIORITY", "Ticket priority must be 'low', 'medium', 'high', or 'urgent'")
	}
}

// ValidateTicketStatus checks the status against the closed enum set
func ValidateTicketStatus(s TicketStatus) error {
	switch s {
	case TicketStatusNew, TicketStatusInProgress, TicketStatusWaiting, TicketStatusResolved, TicketStatusClosed:
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Invalid ticket status")
	}
}
