package embedding

import "fmt"

// ProviderUnavailableError indicates that the embedding provider failed
// or returned an unusable vector. It always aborts the scoring call that
// triggered it; the engine never substitutes a default similarity.
type ProviderUnavailableError struct {
	Message string
	Cause   error
}

func (e *ProviderUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("embedding provider unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("embedding provider unavailable: %s", e.Message)
}

func (e *ProviderUnavailableError) Unwrap() error {
	return e.Cause
}
