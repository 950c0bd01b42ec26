// Package errors defines the domain errors shared by the poncoocr packages.
package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// ErrConfiguration is the root of every configuration failure.
	ErrConfiguration = errors.New("configuration error")

	// ErrDuplicateOption is returned when an option name is registered twice.
	ErrDuplicateOption = fmt.Errorf("%w: duplicate option", ErrConfiguration)

	// ErrInvalidOption is returned when an option declaration is malformed.
	ErrInvalidOption = fmt.Errorf("%w: invalid option", ErrConfiguration)

	// ErrMissingDataDir is returned when path defaults cannot be derived
	// because no base data directory is known.
	ErrMissingDataDir = fmt.Errorf("%w: missing data directory", ErrConfiguration)

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// ConfigError ties a configuration failure to the option that caused it.
type ConfigError struct {
	Option string
	Err    error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Option == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("option %q: %v", e.Option, e.Err)
}

// Is implements errors.Is interface
func (e *ConfigError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// Unwrap implements errors.Unwrap interface
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a configuration error for the named option.
func NewConfigError(option string, err error) *ConfigError {
	return &ConfigError{
		Option: option,
		Err:    err,
	}
}

// DomainError represents a domain-specific error with context
type DomainError struct {
	Type    error
	Message string
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	return e.Type.Error()
}

// Is implements errors.Is interface
func (e *DomainError) Is(target error) bool {
	return errors.Is(e.Type, target)
}

// Unwrap implements errors.Unwrap interface
func (e *DomainError) Unwrap() error {
	return e.Type
}

// NewDomainError creates a new domain error
func NewDomainError(errType error, message string) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
	}
}
