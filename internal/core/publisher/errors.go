package publisher

import (
	"errors"
	"fmt"

	"ReviewHub/internal/core/platforms"
)

// Sentinel errors for the publish flow
var (
	// ErrInvalidRequest is returned when content or platforms are missing
	ErrInvalidRequest = errors.New("post content and platforms are required")

	// ErrNoBusinessProfile is returned by the business profile store
	// when no token row exists for the account
	ErrNoBusinessProfile = errors.New("no google business profile tokens for account")
)

// NotAuthenticatedError reports a platform with no stored credentials
type NotAuthenticatedError struct {
	Platform string
}

func (e *NotAuthenticatedError) Error() string {
	return fmt.Sprintf("Platform %s is not authenticated", e.Platform)
}

// IsNotAuthenticated checks if error is a platform auth error
func IsNotAuthenticated(err error) bool {
	var authErr *NotAuthenticatedError
	return errors.As(err, &authErr)
}

// ValidationFailedError carries the per-platform validation results
// when any platform rejected the post. Publishing is all-or-nothing at
// the validation gate: one invalid platform blocks every platform.
type ValidationFailedError struct {
	Results map[string]platforms.ValidationResult
}

func (e *ValidationFailedError) Error() string {
	return "post validation failed"
}

// IsValidationFailed checks if error is a validation gate failure
func IsValidationFailed(err error) bool {
	var valErr *ValidationFailedError
	return errors.As(err, &valErr)
}
