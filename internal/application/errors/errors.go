// Package apperrors defines application-level error types.
package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotLoaded is returned by game operations invoked before Load.
var ErrNotLoaded = errors.New("world state is not loaded")

// InvalidInputError indicates a combine or lookup named an element that
// cannot be used. No state was mutated.
type InvalidInputError struct {
	Element string
	Reason  string
}

func (e *InvalidInputError) Error() string {
	if e.Element == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input: element %q: %s", e.Element, e.Reason)
}

// NewInvalidInputError creates a new invalid input error.
func NewInvalidInputError(element, reason string) *InvalidInputError {
	return &InvalidInputError{
		Element: element,
		Reason:  reason,
	}
}

// IntegrityError indicates a referenced element had lost its record.
// It is recoverable and reported as a notice, not returned.
type IntegrityError struct {
	Element   string
	Message   string
	Recovered bool // true when the seed copy was reinstalled
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity fault for %q: %s", e.Element, e.Message)
}

// NewIntegrityError creates a new integrity error.
func NewIntegrityError(element, message string, recovered bool) *IntegrityError {
	return &IntegrityError{
		Element:   element,
		Message:   message,
		Recovered: recovered,
	}
}

// PersistenceError indicates durable storage failed or held an unusable record.
type PersistenceError struct {
	Cause error
	Op    string
	Key   string
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("persistence %s failed for %q: %v", e.Op, e.Key, e.Cause)
	}
	return fmt.Sprintf("persistence %s failed for %q", e.Op, e.Key)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

// NewPersistenceError creates a new persistence error.
func NewPersistenceError(op, key string, cause error) *PersistenceError {
	return &PersistenceError{
		Op:    op,
		Key:   key,
		Cause: cause,
	}
}

// GenerationExhaustedError records that collision resolution ran out of
// attempts and fell back to a timestamp suffix. Combine still succeeds.
type GenerationExhaustedError struct {
	Candidate string
	Final     string
	Attempts  int
}

func (e *GenerationExhaustedError) Error() string {
	return fmt.Sprintf("collision resolution for %q exhausted after %d attempts, using %q", e.Candidate, e.Attempts, e.Final)
}

// NewGenerationExhaustedError creates a new generation exhaustion error.
func NewGenerationExhaustedError(candidate, final string, attempts int) *GenerationExhaustedError {
	return &GenerationExhaustedError{
		Candidate: candidate,
		Final:     final,
		Attempts:  attempts,
	}
}

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

// IsPersistence reports whether err is a PersistenceError.
func IsPersistence(err error) bool {
	var target *PersistenceError
	return errors.As(err, &target)
}
