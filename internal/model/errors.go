package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Candidate errors
	ErrCandidateNotFound   = errors.New("candidate not found")
	ErrCandidateExists     = errors.New("candidate already exists")
	ErrIdentifierMismatch  = errors.New("path identifier does not match body identifier")
	ErrIdentifierExhausted = errors.New("could not generate a unique candidate identifier")
)

// ValidationError reports a required field that is missing or blank
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements error interface
func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}
