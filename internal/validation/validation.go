// Package validation holds the two failure shapes every form and command
// reports: messages keyed by field, and a single business-rule message.
package validation

import (
	"regexp"
	"sort"
	"strings"

	"github.com/go-faster/errors"
)

// Errors maps a field name to the message shown next to it
type Errors map[string]string

// Add records msg for field unless the field already has a message
func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; ok {
		return
	}
	e[field] = msg
}

// Required adds "<label> is required" when value is blank
func (e Errors) Required(field, value, label string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, label+" is required")
	}
}

// Err returns e as an error, or nil when it is empty
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// RuleError is a business-rule violation not owned by a single input.
// Field, when set, names the control the rule concerns.
type RuleError struct {
	Field   string
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

// NewRuleError builds a RuleError
func NewRuleError(field, message string) *RuleError {
	return &RuleError{Field: field, Message: message}
}

// AsErrors reports whether err carries field errors
func AsErrors(err error) (Errors, bool) {
	var v Errors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

// AsRule reports whether err carries a business-rule violation
func AsRule(err error) (*RuleError, bool) {
	var r *RuleError
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

var (
	simpleEmail = regexp.MustCompile(`\S+@\S+\.\S+`)
	strictEmail = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	mobile      = regexp.MustCompile(`^\d{10}$`)
	pincode     = regexp.MustCompile(`^\d{6}$`)
	ifsc        = regexp.MustCompile(`^[A-Za-z]{4}0[A-Za-z0-9]{6}$`)
)

// IsEmail checks the loose shape used by the pandit form
func IsEmail(s string) bool { return simpleEmail.MatchString(s) }

// IsStrictEmail checks the anchored address pattern used by the devotee form
func IsStrictEmail(s string) bool { return strictEmail.MatchString(s) }

// IsMobile checks for exactly 10 digits
func IsMobile(s string) bool { return mobile.MatchString(s) }

// IsPincode checks for exactly 6 digits
func IsPincode(s string) bool { return pincode.MatchString(s) }

// IsIFSC checks the bank routing code: 4 letters, a zero, 6 alphanumerics
func IsIFSC(s string) bool { return ifsc.MatchString(s) }

// OneOf reports whether s is among allowed
func OneOf(s string, allowed ...string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
