package align

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func years(v float64) *float64 { return &v }

func TestExperience_ShortfallInYears(t *testing.T) {
	job := &types.ExtractedDocument{RawText: "j", ExperienceYears: years(5)}
	resume := &types.ExtractedDocument{RawText: "r", ExperienceYears: years(3)}

	result := Experience(job, resume)

	assert.InDelta(t, 0.6, result.Score, 0.001)
	assert.NotEmpty(t, result.Explanation)
}

func TestExperience_MeetsOrExceedsRequirement(t *testing.T) {
	job := &types.ExtractedDocument{RawText: "j", ExperienceYears: years(5)}

	for _, candidate := range []float64{5, 7, 20} {
		resume := &types.ExtractedDocument{RawText: "r", ExperienceYears: years(candidate)}
		assert.Equal(t, 1.0, Experience(job, resume).Score, "candidate with %.0f years", candidate)
	}
}

func TestExperience_NoRequirement(t *testing.T) {
	job := &types.ExtractedDocument{RawText: "j"}
	resume := &types.ExtractedDocument{RawText: "r", ExperienceYears: years(2)}

	assert.Equal(t, 1.0, Experience(job, resume).Score)
}

func TestExperience_RequirementWithoutCandidateData(t *testing.T) {
	job := &types.ExtractedDocument{RawText: "j", ExperienceYears: years(5)}
	resume := &types.ExtractedDocument{RawText: "r"}

	result := Experience(job, resume)

	assert.Equal(t, 0.5, result.Score)
	assert.Contains(t, result.Explanation, "could not be compared")
}

func TestExperience_SeniorityFallback(t *testing.T) {
	job := &types.ExtractedDocument{RawText: "j", Seniority: types.SenioritySenior}

	cases := []struct {
		candidate types.Seniority
		want      float64
	}{
		{types.SenioritySenior, 1.0},
		{types.SeniorityLead, 1.0},
		{types.SeniorityMid, 1.0 - 1.0/3.0},
		{types.SeniorityJunior, 1.0 - 2.0/3.0},
	}
	for _, tc := range cases {
		resume := &types.ExtractedDocument{RawText: "r", Seniority: tc.candidate}
		assert.InDelta(t, tc.want, Experience(job, resume).Score, 0.001, "candidate %s", tc.candidate)
	}
}

func TestExperience_YearsTakePrecedenceOverSeniority(t *testing.T) {
	job := &types.ExtractedDocument{
		RawText:         "j",
		ExperienceYears: years(4),
		Seniority:       types.SeniorityLead,
	}
	resume := &types.ExtractedDocument{
		RawText:         "r",
		ExperienceYears: years(4),
		Seniority:       types.SeniorityJunior,
	}

	assert.Equal(t, 1.0, Experience(job, resume).Score)
}

func TestExperience_MonotonicDegradation(t *testing.T) {
	job := &types.ExtractedDocument{RawText: "j", ExperienceYears: years(10)}

	previous := 2.0
	for _, candidate := range []float64{9, 7, 5, 3, 1, 0} {
		resume := &types.ExtractedDocument{RawText: "r", ExperienceYears: years(candidate)}
		score := Experience(job, resume).Score
		assert.Less(t, score, previous, "candidate with %.0f years", candidate)
		assert.GreaterOrEqual(t, score, 0.0)
		previous = score
	}
}
