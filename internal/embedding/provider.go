// Package embedding provides the capability interface for text embedding
// providers and the Gemini-backed implementation.
package embedding

import "context"

// Provider converts text into a fixed-length numeric vector. The vector
// dimensionality is provider-defined but must be consistent across calls;
// the similarity layer rejects mismatched dimensions.
type Provider interface {
	// Embed returns the embedding vector for the given text
	Embed(ctx context.Context, text string) ([]float32, error)
	// Close releases any resources held by the provider
	Close() error
}
