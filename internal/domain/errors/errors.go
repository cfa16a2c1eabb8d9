package errors

import (
	"errors"
	"fmt"
)

var (
	// Configuration errors
	ErrConfigKeyMissing   = errors.New("configuration key missing")
	ErrInvalidConfigValue = errors.New("invalid configuration value")
	ErrInvalidFee         = errors.New("invalid cod fee")

	// Plugin errors
	ErrPluginNotFound      = errors.New("plugin not found")
	ErrPluginInactive      = errors.New("plugin is inactive")
	ErrPluginAlreadyLoaded = errors.New("plugin already loaded")
	ErrUnknownOperation    = errors.New("unknown payment operation")

	// Money errors
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrInvalidAmount    = errors.New("invalid amount")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")
)

// DomainError wraps errors with additional context
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// ConfigError reports a plugin configuration key that could not be used.
type ConfigError struct {
	Key string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration %q: %v", e.Key, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error
func NewConfigError(key string, err error) *ConfigError {
	return &ConfigError{Key: key, Err: err}
}
