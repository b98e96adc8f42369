package semantic

import (
	"errors"
	"fmt"
)

// Validation error codes. They mirror the error taxonomy exposed to HTTP
// layers: all of these are recoverable input errors, never configuration
// errors.
const (
	CodeInvalidPrefix     = "bioregistry_prefix"
	CodeInvalidCURIE      = "bioregistry_curie"
	CodeInvalidIdentifier = "bioregistry_identifier"
)

// ValidationError reports a malformed Prefix, CURIE, or identifier value. It
// is typed so transports can surface it as an input-validation failure (422)
// rather than a server fault.
type ValidationError struct {
	Code    string
	Value   string
	Prefix  string
	Pattern string
	Field   string
}

func (e *ValidationError) Error() string {
	switch e.Code {
	case CodeInvalidPrefix:
		return fmt.Sprintf("semantic: invalid registry prefix %q", e.Value)
	case CodeInvalidCURIE:
		if e.Pattern != "" {
			return fmt.Sprintf("semantic: invalid local unique identifier in %q, does not match %s", e.Value, e.Pattern)
		}
		return fmt.Sprintf("semantic: invalid registry prefix (%s) in %q", e.Prefix, e.Value)
	case CodeInvalidIdentifier:
		return fmt.Sprintf("semantic: field %s: value %q does not match %s", e.Field, e.Value, e.Pattern)
	default:
		return fmt.Sprintf("semantic: invalid value %q", e.Value)
	}
}

// IsValidationError reports whether err is a recoverable value-validation
// failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
