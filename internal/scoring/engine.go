package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/jonathan/resume-matcher/internal/align"
	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/semantic"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Default component weights
const (
	defaultSemanticWeight   = 0.40
	defaultSkillsWeight     = 0.30
	defaultExperienceWeight = 0.20
	defaultEducationWeight  = 0.10
)

// weightSumTolerance is the accepted deviation of the weight sum from 1.0.
const weightSumTolerance = 0.01

// Weights holds the relative contribution of each component to the
// overall score. The four weights must sum to 1.0.
type Weights struct {
	Semantic   float64 `json:"semantic_weight"`
	Skills     float64 `json:"skills_weight"`
	Experience float64 `json:"experience_weight"`
	Education  float64 `json:"education_weight"`
}

// DefaultWeights returns the default component weights.
func DefaultWeights() Weights {
	return Weights{
		Semantic:   defaultSemanticWeight,
		Skills:     defaultSkillsWeight,
		Experience: defaultExperienceWeight,
		Education:  defaultEducationWeight,
	}
}

// validate checks that all weights are non-negative and sum to 1.0
// within tolerance. Invalid weights are rejected, never renormalized.
func (w Weights) validate() error {
	for _, pair := range []struct {
		name  string
		value float64
	}{
		{"semantic_weight", w.Semantic},
		{"skills_weight", w.Skills},
		{"experience_weight", w.Experience},
		{"education_weight", w.Education},
	} {
		if pair.value < 0 || pair.value > 1 {
			return &ConfigurationError{
				Message: fmt.Sprintf("%s must be in [0,1], got %g", pair.name, pair.value),
			}
		}
	}

	sum := w.Semantic + w.Skills + w.Experience + w.Education
	if math.Abs(sum-1.0) > weightSumTolerance {
		return &ConfigurationError{
			Message: fmt.Sprintf("weights must sum to 1.0, got %g", sum),
		}
	}
	return nil
}

// Options configures an Engine. Zero values select defaults.
type Options struct {
	Weights        *Weights // nil selects DefaultWeights
	FuzzyThreshold float64  // 0 selects skills.DefaultFuzzyThreshold
	MinSkillImpact float64  // 0 selects DefaultMinSkillImpact
}

// Engine orchestrates one scoring call per (job, resume) pair. It holds
// only immutable configuration and is safe for concurrent use.
type Engine struct {
	weights        Weights
	matcher        *skills.Matcher
	semantic       *semantic.Scorer
	minSkillImpact float64
}

// NewEngine creates a scoring engine backed by the given embedding
// provider. Invalid options fail fast with a ConfigurationError before
// any scoring is attempted.
func NewEngine(provider embedding.Provider, opts Options) (*Engine, error) {
	weights := DefaultWeights()
	if opts.Weights != nil {
		weights = *opts.Weights
	}
	if err := weights.validate(); err != nil {
		return nil, err
	}

	threshold := opts.FuzzyThreshold
	if threshold == 0 {
		threshold = skills.DefaultFuzzyThreshold
	}
	if threshold < 0 || threshold > 1 {
		return nil, &ConfigurationError{
			Message: fmt.Sprintf("fuzzy threshold must be in (0,1], got %g", threshold),
		}
	}

	impact := opts.MinSkillImpact
	if impact == 0 {
		impact = DefaultMinSkillImpact
	}
	if impact < 0 || impact > 1 {
		return nil, &ConfigurationError{
			Message: fmt.Sprintf("minimum skill impact must be in [0,1], got %g", impact),
		}
	}

	return &Engine{
		weights:        weights,
		matcher:        skills.NewMatcher(threshold),
		semantic:       semantic.NewScorer(provider),
		minSkillImpact: impact,
	}, nil
}

// Score evaluates how well the resume matches the job description and
// returns a fresh ScoreBreakdown. Any sub-computation failure aborts the
// whole call; no partial or degraded breakdown is ever returned.
func (e *Engine) Score(ctx context.Context, job, resume *types.ExtractedDocument) (*types.ScoreBreakdown, error) {
	if err := validateDocument("job description", job); err != nil {
		return nil, err
	}
	if err := validateDocument("resume", resume); err != nil {
		return nil, err
	}

	semanticScore, err := e.semantic.Similarity(ctx, job.RawText, resume.RawText)
	if err != nil {
		return nil, err
	}

	skillResult := e.matcher.Match(job.Skills, resume.Skills)
	experience := align.Experience(job, resume)
	education := align.Education(job, resume)

	components := types.ScoreComponents{
		Semantic:   semanticScore,
		Skills:     skillResult.CoverageRatio,
		Experience: experience.Score,
		Education:  education.Score,
	}

	overall := 100 * (e.weights.Semantic*components.Semantic +
		e.weights.Skills*components.Skills +
		e.weights.Experience*components.Experience +
		e.weights.Education*components.Education)
	overall = round2(overall)

	breakdown := &types.ScoreBreakdown{
		Overall:        overall,
		Interpretation: Interpret(overall),
		// Components are rounded for the serialized breakdown only;
		// the overall score above is computed from the raw values.
		Components: types.ScoreComponents{
			Semantic:   round2(components.Semantic),
			Skills:     round2(components.Skills),
			Experience: round2(components.Experience),
			Education:  round2(components.Education),
		},
		MatchedSkills:      skillResult.Matched,
		MissingSkills:      skillResult.Missing,
		ExperienceDetail:   experience.Explanation,
		EducationDetail:    education.Explanation,
		RequiredSkillCount: len(skillResult.Matched) + len(skillResult.Missing),
		MatchedSkillCount:  len(skillResult.Matched),
		MissingSkillCount:  len(skillResult.Missing),
	}
	breakdown.Recommendations = e.recommend(components, skillResult, experience, education)

	return breakdown, nil
}

// Interpret maps a 0-100 score to a human-readable match quality band.
func Interpret(score float64) string {
	switch {
	case score >= 90:
		return "Excellent Match"
	case score >= 75:
		return "Good Match"
	case score >= 60:
		return "Moderate Match"
	case score >= 40:
		return "Weak Match"
	default:
		return "Poor Match"
	}
}

func validateDocument(name string, doc *types.ExtractedDocument) error {
	if doc == nil {
		return &MalformedInputError{Document: name, Message: "document is nil"}
	}
	if doc.RawText == "" {
		return &MalformedInputError{Document: name, Message: "raw text is empty"}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
