package errors

import (
	"encoding/json"
	"fmt"
)

// Code tags an error with the reason a parse or encode call failed
type Code int

const (
	// Internal indicates a broken invariant rather than bad input
	Internal Code = iota + 1
	// UnknownColumn indicates the column is not present in any config's key set
	UnknownColumn
	// UnknownComparator indicates the comparator is not part of the resolved type's vocabulary
	UnknownComparator
	// ValueTypeMismatch indicates the raw value could not be coerced into the type's domain
	ValueTypeMismatch
	// ValueNotAllowed indicates the coerced value fails an allowed_values constraint
	ValueNotAllowed
	// InvalidConfig indicates a malformed whitelist entry (a caller configuration error)
	InvalidConfig
)

// String returns the code's human-readable name
func (c Code) String() string {
	switch c {
	case UnknownColumn:
		return "unknown_column"
	case UnknownComparator:
		return "unknown_comparator"
	case ValueTypeMismatch:
		return "value_type_mismatch"
	case ValueNotAllowed:
		return "value_not_allowed"
	case InvalidConfig:
		return "invalid_config"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler
func (c Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Error is a custom error
type Error struct {
	Code     Code     `json:"code"`
	Messages []string `json:"messages"`
	Err      error    `json:"err,omitempty"`
}

// Error returns the Error as a json string
func (e *Error) Error() string {
	bits, _ := json.Marshal(e)
	return string(bits)
}

// RemoveError removes the wrapped error from the Error and leaves its messages and code
func (e *Error) RemoveError() *Error {
	return &Error{
		Code:     e.Code,
		Messages: e.Messages,
		Err:      nil,
	}
}

// New creates a new Error with the given code and formatted message
func New(code Code, msg string, args ...any) error {
	return &Error{
		Code:     code,
		Messages: []string{fmt.Sprintf(msg, args...)},
	}
}

// Extract extracts the custom Error from the given error
func Extract(err error) *Error {
	e, ok := err.(*Error)
	if !ok {
		return &Error{
			Code: Internal,
			Err:  err,
		}
	}
	return e
}

// Wrap wraps the given error and returns a new one
func Wrap(err error, code Code, msg string, args ...any) error {
	if err == nil {
		return nil
	}
	e, ok := err.(*Error)
	if ok {
		if msg != "" {
			e.Messages = append(e.Messages, fmt.Sprintf(msg, args...))
		}
		if code > 0 {
			e.Code = code
		}
		return e
	}
	e = &Error{
		Code: code,
		Err:  err,
	}
	if msg != "" {
		e.Messages = append(e.Messages, fmt.Sprintf(msg, args...))
	}
	return e
}

// Is reports whether the given error carries the given code
func Is(err error, code Code) bool {
	if err == nil {
		return false
	}
	return Extract(err).Code == code
}
