package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for the lookup and reconciliation flows
var (
	// ErrBadInput indicates a missing or unusable required field
	ErrBadInput = errors.New("missing or invalid input")

	// ErrMissingCredential indicates the provider API key is not configured
	ErrMissingCredential = errors.New("provider credential not configured")

	// ErrNotFound indicates the provider returned zero matching flights
	ErrNotFound = errors.New("flight not found")

	// ErrUnresolvable indicates a reference-data lookup found nothing.
	// Not fatal: callers fall back to the original identifier.
	ErrUnresolvable = errors.New("code not resolvable")
)

// ProviderError carries the upstream non-success HTTP status so the API
// boundary can propagate it verbatim.
type ProviderError struct {
	StatusCode int
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned status %d", e.StatusCode)
}

// AsProviderError unwraps err into a ProviderError if there is one.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
