package models

import "fmt"

// ConfigurationError is returned at startup when a required setting is absent
// or invalid.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration for %s: %s", e.Field, e.Reason)
}

// DependencyError wraps a failure of the external model provider. Its message
// is the provider's message so it can be handed back to callers unchanged.
type DependencyError struct {
	Provider string
	Err      error
}

func (e *DependencyError) Error() string {
	return e.Err.Error()
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

// FormatError reports a model reply without a usable embedded JSON array.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	return e.Reason
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
