// Package forms validates user input before anything is sent to the
// backend. A form that fails validation never issues a request.
package forms

import "strings"

// Field error texts.
const (
	MsgRequired = "This field is required"
	MsgNumber   = "Must be a number"
)

// ValidationError is the form-level message plus per-field messages keyed
// by the field's JSON name.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

// Field returns the message for one field, or "".
func (e *ValidationError) Field(name string) string {
	if e == nil {
		return ""
	}
	return e.Fields[name]
}

type fieldErrors map[string]string

func (f fieldErrors) required(name, value string) {
	if strings.TrimSpace(value) == "" {
		f[name] = MsgRequired
	}
}

func (f fieldErrors) err(message string) error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Message: message, Fields: f}
}
