package semantic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/embedding"
)

// fakeProvider returns a fixed vector per input text.
type fakeProvider struct {
	vectors map[string][]float32
	err     error
}

func (p *fakeProvider) Embed(_ context.Context, text string) ([]float32, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.vectors[text], nil
}

func (p *fakeProvider) Close() error { return nil }

func TestSimilarity_IdenticalDirections(t *testing.T) {
	scorer := NewScorer(&fakeProvider{vectors: map[string][]float32{
		"a": {1, 0, 0},
		"b": {2, 0, 0},
	}})

	sim, err := scorer.Similarity(context.Background(), "a", "b")

	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestSimilarity_OppositeDirections(t *testing.T) {
	scorer := NewScorer(&fakeProvider{vectors: map[string][]float32{
		"a": {1, 0},
		"b": {-1, 0},
	}})

	sim, err := scorer.Similarity(context.Background(), "a", "b")

	require.NoError(t, err)
	assert.InDelta(t, 0.0, sim, 1e-9)
}

func TestSimilarity_OrthogonalIsMidpoint(t *testing.T) {
	scorer := NewScorer(&fakeProvider{vectors: map[string][]float32{
		"a": {1, 0},
		"b": {0, 1},
	}})

	sim, err := scorer.Similarity(context.Background(), "a", "b")

	require.NoError(t, err)
	assert.InDelta(t, 0.5, sim, 1e-9)
}

func TestSimilarity_DimensionMismatch(t *testing.T) {
	scorer := NewScorer(&fakeProvider{vectors: map[string][]float32{
		"a": {1, 0, 0},
		"b": {1, 0},
	}})

	_, err := scorer.Similarity(context.Background(), "a", "b")

	var provErr *embedding.ProviderUnavailableError
	require.ErrorAs(t, err, &provErr)
	assert.Contains(t, provErr.Message, "dimensionality mismatch")
}

func TestSimilarity_ZeroVector(t *testing.T) {
	scorer := NewScorer(&fakeProvider{vectors: map[string][]float32{
		"a": {0, 0},
		"b": {1, 0},
	}})

	_, err := scorer.Similarity(context.Background(), "a", "b")

	var provErr *embedding.ProviderUnavailableError
	require.ErrorAs(t, err, &provErr)
}

func TestSimilarity_ProviderFailurePropagates(t *testing.T) {
	wantErr := &embedding.ProviderUnavailableError{Message: "quota exhausted"}
	scorer := NewScorer(&fakeProvider{err: wantErr})

	_, err := scorer.Similarity(context.Background(), "a", "b")

	var provErr *embedding.ProviderUnavailableError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "quota exhausted", provErr.Message)
}
