package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/scoring"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Provider failures map to 502 so callers can distinguish a retryable
// upstream failure from invalid input or a misconfigured system.
func HTTPStatus(err error) int {
	var providerErr *embedding.ProviderUnavailableError
	var inputErr *scoring.MalformedInputError
	var configErr *scoring.ConfigurationError

	switch {
	case errors.As(err, &providerErr):
		return http.StatusBadGateway
	case errors.As(err, &inputErr):
		return http.StatusBadRequest
	case errors.As(err, &configErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
