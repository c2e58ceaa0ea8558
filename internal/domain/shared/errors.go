package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound     = NewDomainError("NOT_FOUND", "Record not found in collection")
	ErrInvalidInput = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrNoData       = NewDomainError("NO_DATA", "Aggregate is undefined over an empty collection")
)
