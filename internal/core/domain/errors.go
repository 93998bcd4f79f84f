package domain

import (
	"errors"
	"fmt"
)

// Error sentinels for the directory client.
var (
	// ErrConfiguration indicates an invalid client configuration.
	// Raised at construction, before any network I/O.
	ErrConfiguration = errors.New("dirctl: configuration error")

	// ErrValidation indicates a missing or invalid call parameter.
	// Raised before any network I/O.
	ErrValidation = errors.New("dirctl: validation error")

	// ErrTransport indicates an HTTP failure whose body could not be
	// interpreted as a vendor error envelope.
	ErrTransport = errors.New("dirctl: transport error")

	// ErrAuthRequired indicates no usable token could be established.
	ErrAuthRequired = errors.New("dirctl: authentication required")
)

// MissingParameter builds a validation error naming the absent parameter.
func MissingParameter(name string) error {
	return fmt.Errorf("%w: required parameter %q is missing", ErrValidation, name)
}
