package app_errors

import "fmt"

// AppError is the error shape every repo and service returns; the global
// error handler renders it with i18n.
type AppError struct {
	Code       int          // HTTP status code
	Type       string       // NOT_FOUND, SCOPE_VIOLATION, etc.
	MessageKey string       // i18n key
	Details    []FieldError // optional (validation)
	Err        error        // original error (internal only)
}

const (
	ErrValidation   = "VALIDATION_ERROR"
	ErrInvalidBody  = "INVALID_BODY"
	ErrInvalidParam = "INVALID_PARAM"
	ErrInvalidQuery = "INVALID_QUERY"
	ErrUnauthorized = "UNAUTHORIZED"
	ErrForbidden    = "FORBIDDEN"
	ErrNotFound     = "NOT_FOUND"
	ErrConflict     = "CONFLICT"
	ErrInternal     = "INTERNAL_ERROR"

	// Workflow-core taxonomy. All recoverable by the caller.
	ErrScopeViolation         = "SCOPE_VIOLATION"
	ErrInvalidTransition      = "INVALID_TRANSITION"
	ErrTerminalState          = "TERMINAL_STATE"
	ErrUnknownAssignee        = "UNKNOWN_ASSIGNEE"
	ErrConcurrentModification = "CONCURRENT_MODIFICATION"
)

type FieldError struct {
	Field      string         `json:"field"`
	Reason     string         `json:"reason"`
	MessageKey string         `json:"message_key"`
	Params     map[string]any `json:"params,omitempty"`
}

func NewAppError(code int, errType string, messageKey string, err error) *AppError {
	return &AppError{
		Code:       code,
		Type:       errType,
		MessageKey: messageKey,
		Err:        err,
	}
}

func NewValidationError(details []FieldError) *AppError {
	return &AppError{
		Code:       400,
		Type:       ErrValidation,
		MessageKey: "invalid_request",
		Details:    details,
	}
}

// NewInvalidTransition carries the attempted and current states; transitions
// are never silently clamped or coerced.
func NewInvalidTransition(current, attempted string) *AppError {
	return &AppError{
		Code:       409,
		Type:       ErrInvalidTransition,
		MessageKey: "transition.invalid",
		Err:        fmt.Errorf("cannot transition from %s to %s", current, attempted),
	}
}

func NewTerminalStateViolation(current, attempted string) *AppError {
	return &AppError{
		Code:       409,
		Type:       ErrTerminalState,
		MessageKey: "transition.terminal_state",
		Err:        fmt.Errorf("item is terminal at %s, attempted %s", current, attempted),
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.MessageKey
}
