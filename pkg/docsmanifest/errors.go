package docsmanifest

import (
	"errors"
	"fmt"
)

// Sentinel errors for the docsmanifest package
var (
	// ErrInvalidManifest matches every *ValidationError
	ErrInvalidManifest = errors.New("invalid docs manifest")

	// ErrNotFound matches every *NotFoundError
	ErrNotFound = errors.New("not found")

	// ErrNoPlatforms indicates the manifest declares no platforms
	ErrNoPlatforms = errors.New("manifest must contain at least one platform")

	// ErrEmptyPlatform indicates a platform has no entries
	ErrEmptyPlatform = errors.New("platform must contain at least one entry")

	// ErrEmptyField indicates a required entry field is empty or blank
	ErrEmptyField = errors.New("field cannot be empty")

	// ErrDuplicateID indicates an id appears twice within one platform
	ErrDuplicateID = errors.New("duplicate entry id")

	// ErrDuplicatePlatform indicates a platform key is declared twice
	ErrDuplicatePlatform = errors.New("duplicate platform key")

	// ErrUnknownPlatform indicates a well-formed key outside the known set
	ErrUnknownPlatform = errors.New("unknown platform key")

	// ErrMalformedPlatform indicates a key that is not a valid identifier
	ErrMalformedPlatform = errors.New("malformed platform key")

	// ErrInvalidFormat indicates the data is not valid YAML or JSON
	ErrInvalidFormat = errors.New("manifest must be valid YAML or JSON")

	// ErrFileNotFound indicates the manifest file does not exist
	ErrFileNotFound = errors.New("manifest file not found")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .yaml, .yml, or .json)")
)

// ValidationError represents a manifest invariant violation found at load time
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports every validation error as ErrInvalidManifest
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidManifest
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: err.Error(),
		Err:     err,
	}
}

// NotFoundError is returned when a platform key is not in the manifest
type NotFoundError struct {
	Platform Platform
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("platform %q: %v", e.Platform, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(platform Platform) *NotFoundError {
	return &NotFoundError{Platform: platform}
}

// IsValidationError checks if err carries a *ValidationError
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// IsNotFound checks if err carries a *NotFoundError
func IsNotFound(err error) bool {
	var nfErr *NotFoundError
	return errors.As(err, &nfErr)
}
