package scoring

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultBatchConcurrency bounds how many resumes are scored in parallel.
const DefaultBatchConcurrency = 4

// ScoreBatch scores every resume against the same job description. Each
// scoring call is independent; the shared engine configuration is
// immutable, so calls run concurrently up to the given limit. The first
// failure cancels the remaining pending calls and fails the whole
// batch; calls already in flight run to completion. Results are
// returned in the order of the input resumes.
func (e *Engine) ScoreBatch(ctx context.Context, job *types.ExtractedDocument, resumes []*types.ExtractedDocument, concurrency int) ([]*types.ScoreBreakdown, error) {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	breakdowns := make([]*types.ScoreBreakdown, len(resumes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, resume := range resumes {
		g.Go(func() error {
			breakdown, err := e.Score(gctx, job, resume)
			if err != nil {
				return err
			}
			breakdowns[i] = breakdown
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return breakdowns, nil
}
