package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/types"
)

// vectorProvider serves canned embeddings keyed by document text.
type vectorProvider struct {
	vectors map[string][]float32
	err     error
}

func (p *vectorProvider) Embed(_ context.Context, text string) ([]float32, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.vectors[text], nil
}

func (p *vectorProvider) Close() error { return nil }

func years(v float64) *float64 { return &v }

func TestNewEngine_RejectsWeightsNotSummingToOne(t *testing.T) {
	provider := &vectorProvider{}

	_, err := NewEngine(provider, Options{Weights: &Weights{
		Semantic:   0.5,
		Skills:     0.3,
		Experience: 0.1,
		Education:  0.05,
	}})

	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Contains(t, confErr.Message, "sum to 1.0")
}

func TestNewEngine_RejectsNegativeWeight(t *testing.T) {
	provider := &vectorProvider{}

	_, err := NewEngine(provider, Options{Weights: &Weights{
		Semantic:   -0.1,
		Skills:     0.5,
		Experience: 0.4,
		Education:  0.2,
	}})

	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
}

func TestNewEngine_AcceptsWeightsWithinTolerance(t *testing.T) {
	provider := &vectorProvider{}

	_, err := NewEngine(provider, Options{Weights: &Weights{
		Semantic:   0.40,
		Skills:     0.30,
		Experience: 0.20,
		Education:  0.105,
	}})

	assert.NoError(t, err)
}

func TestScore_FullBreakdown(t *testing.T) {
	jobText := "Senior data engineer building pipelines"
	resumeText := "Data engineer with pipeline experience"

	provider := &vectorProvider{vectors: map[string][]float32{
		jobText:    {1, 0},
		resumeText: {0.6, 0.8}, // cosine 0.6, rescaled to 0.8
	}}
	engine, err := NewEngine(provider, Options{})
	require.NoError(t, err)

	job := &types.ExtractedDocument{
		RawText:         jobText,
		Skills:          []string{"python", "sql", "docker"},
		ExperienceYears: years(5),
		Education:       types.EducationBachelor,
	}
	resume := &types.ExtractedDocument{
		RawText:         resumeText,
		Skills:          []string{"Python", "SQL"},
		ExperienceYears: years(3),
		Education:       types.EducationMaster,
	}

	breakdown, err := engine.Score(context.Background(), job, resume)
	require.NoError(t, err)

	// 100 * (0.4*0.8 + 0.3*(2/3) + 0.2*0.6 + 0.1*1.0)
	assert.InDelta(t, 74.0, breakdown.Overall, 0.01)
	assert.Equal(t, "Moderate Match", breakdown.Interpretation)

	// Components carry 2-decimal rounding in the breakdown; the overall
	// score above is derived from the unrounded values
	assert.InDelta(t, 0.8, breakdown.Components.Semantic, 0.001)
	assert.InDelta(t, 0.67, breakdown.Components.Skills, 1e-9)
	assert.InDelta(t, 0.6, breakdown.Components.Experience, 0.001)
	assert.Equal(t, 1.0, breakdown.Components.Education)

	assert.Equal(t, 3, breakdown.RequiredSkillCount)
	assert.Equal(t, 2, breakdown.MatchedSkillCount)
	assert.Equal(t, 1, breakdown.MissingSkillCount)
	assert.Equal(t, []string{"docker"}, breakdown.MissingSkills)
	assert.NotEmpty(t, breakdown.Recommendations)
}

func TestScore_NilAndEmptyDocuments(t *testing.T) {
	provider := &vectorProvider{vectors: map[string][]float32{}}
	engine, err := NewEngine(provider, Options{})
	require.NoError(t, err)

	valid := &types.ExtractedDocument{RawText: "text"}

	cases := []struct {
		name   string
		job    *types.ExtractedDocument
		resume *types.ExtractedDocument
	}{
		{"nil job", nil, valid},
		{"nil resume", valid, nil},
		{"empty job text", &types.ExtractedDocument{}, valid},
		{"empty resume text", valid, &types.ExtractedDocument{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			breakdown, err := engine.Score(context.Background(), tc.job, tc.resume)
			assert.Nil(t, breakdown)
			var malErr *MalformedInputError
			assert.ErrorAs(t, err, &malErr)
		})
	}
}

func TestScore_ProviderFailureReturnsNoPartialResult(t *testing.T) {
	provider := &vectorProvider{err: &embedding.ProviderUnavailableError{Message: "down"}}
	engine, err := NewEngine(provider, Options{})
	require.NoError(t, err)

	job := &types.ExtractedDocument{RawText: "job"}
	resume := &types.ExtractedDocument{RawText: "resume"}

	breakdown, err := engine.Score(context.Background(), job, resume)

	assert.Nil(t, breakdown)
	var provErr *embedding.ProviderUnavailableError
	assert.ErrorAs(t, err, &provErr)
}

func TestScore_PerfectMatch(t *testing.T) {
	text := "identical text"
	provider := &vectorProvider{vectors: map[string][]float32{
		text: {1, 0},
	}}
	engine, err := NewEngine(provider, Options{})
	require.NoError(t, err)

	doc := &types.ExtractedDocument{
		RawText: text,
		Skills:  []string{"go"},
	}

	breakdown, err := engine.Score(context.Background(), doc, doc)
	require.NoError(t, err)

	assert.Equal(t, 100.0, breakdown.Overall)
	assert.Equal(t, "Excellent Match", breakdown.Interpretation)
	assert.Empty(t, breakdown.Recommendations)
}

func TestInterpret_Bands(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{100, "Excellent Match"},
		{90, "Excellent Match"},
		{89.99, "Good Match"},
		{75, "Good Match"},
		{60, "Moderate Match"},
		{59.99, "Weak Match"},
		{40, "Weak Match"},
		{39.99, "Poor Match"},
		{0, "Poor Match"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Interpret(tc.score), "score %g", tc.score)
	}
}
