package domain

import (
	"errors" // Sentinel errors
	"fmt"    // Error formatting
)

var (
	ErrNotFound       = errors.New("record not found")                // Id does not resolve to a record
	ErrValidation     = errors.New("validation failed")               // Field outside its allowed set
	ErrStore          = errors.New("storage error")                   // Connection or write failure
	ErrCaseHasWallets = errors.New("case still has wallets attached") // Delete needs confirmation
)

// ValidationError describes a rejected field value
type ValidationError struct {
	Field  string // Offending field
	Value  string // Rejected input
	Reason string // Human readable constraint
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrValidation
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
