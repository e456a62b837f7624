package notification

import (
	"errors"
	"fmt"
	"strings"
)

// Domain-specific errors for the notification package.
var (
	ErrStoreUnavailable = errors.New("notification store unavailable")
)

// FieldError is a single payload violation: the JSON field path plus a message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError rejects a whole inbound event. The event must not be
// partially processed when this is returned.
type ValidationError struct {
	Violations []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.String())
	}
	return "invalid webhook payload: " + strings.Join(msgs, ", ")
}

func (e *ValidationError) add(field, message string) {
	e.Violations = append(e.Violations, FieldError{Field: field, Message: message})
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
