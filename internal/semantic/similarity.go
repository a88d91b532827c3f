// Package semantic computes the semantic similarity between two documents
// using an external embedding provider.
package semantic

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/embedding"
)

// Scorer wraps an embedding provider and turns a pair of texts into a
// cosine similarity rescaled to [0,1]. A Scorer is stateless beyond the
// provider and safe for concurrent use.
type Scorer struct {
	provider embedding.Provider
}

// NewScorer creates a Scorer backed by the given provider.
func NewScorer(provider embedding.Provider) *Scorer {
	return &Scorer{provider: provider}
}

// Similarity embeds both texts and returns their cosine similarity
// rescaled from [-1,1] to [0,1]. Both embeddings are requested
// concurrently. Any provider failure or a dimensionality mismatch
// between the two vectors fails the call; there is no fallback score.
func (s *Scorer) Similarity(ctx context.Context, textA, textB string) (float64, error) {
	var vecA, vecB []float32

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		vecA, err = s.provider.Embed(gctx, textA)
		return err
	})
	g.Go(func() error {
		var err error
		vecB, err = s.provider.Embed(gctx, textB)
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	if len(vecA) != len(vecB) {
		return 0, &embedding.ProviderUnavailableError{
			Message: fmt.Sprintf("embedding dimensionality mismatch: %d vs %d", len(vecA), len(vecB)),
		}
	}

	cos, err := cosine(vecA, vecB)
	if err != nil {
		return 0, err
	}

	// Rescale from the provider's native [-1,1] range to [0,1]
	return (cos + 1) / 2, nil
}

// cosine computes the cosine of the angle between two equal-length
// vectors, clamped to [-1,1] against floating-point drift.
func cosine(a, b []float32) (float64, error) {
	var dot, normA, normB float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0, &embedding.ProviderUnavailableError{
			Message: "embedding has zero magnitude",
		}
	}

	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}
	return cos, nil
}
