package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeFoodNotFound      = "FOOD_NOT_FOUND"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeEmptyCart         = "EMPTY_CART"
	ErrCodeInvalidStatus     = "INVALID_STATUS"
	ErrCodeInvalidTransition = "INVALID_STATUS_TRANSITION"
	ErrCodeInvalidCategory   = "INVALID_CATEGORY"
	ErrCodeInvalidParameter  = "INVALID_PARAMETER"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

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
	ErrFoodNotFound      = NewDomainError(ErrCodeFoodNotFound, "Food not found")
	ErrOrderNotFound     = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidQuantity   = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrEmptyCart         = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrInvalidStatus     = NewDomainError(ErrCodeInvalidStatus, "Unknown order status")
	ErrInvalidTransition = NewDomainError(ErrCodeInvalidTransition, "Order status transition is not allowed")
	ErrMissingFoodID     = NewDomainError(ErrCodeMissingField, "Food ID is required")
	ErrInvalidCategory   = NewDomainError(ErrCodeInvalidCategory, "Unknown food category")
)
