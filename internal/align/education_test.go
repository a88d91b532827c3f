package align

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestEducation_MeetsOrExceedsRequirement(t *testing.T) {
	job := &types.ExtractedDocument{RawText: "j", Education: types.EducationBachelor}

	for _, level := range []types.EducationLevel{
		types.EducationBachelor,
		types.EducationMaster,
		types.EducationPhD,
	} {
		resume := &types.ExtractedDocument{RawText: "r", Education: level}
		assert.Equal(t, 1.0, Education(job, resume).Score, "candidate with %s", level)
	}
}

func TestEducation_ShortfallDegradesWithDistance(t *testing.T) {
	job := &types.ExtractedDocument{RawText: "j", Education: types.EducationMaster}

	cases := []struct {
		candidate types.EducationLevel
		want      float64
	}{
		{types.EducationBachelor, 1.0 - 1.0/5.0},
		{types.EducationHighschool, 1.0 - 2.0/5.0},
		{types.EducationNone, 1.0 - 3.0/5.0},
	}
	for _, tc := range cases {
		resume := &types.ExtractedDocument{RawText: "r", Education: tc.candidate}
		assert.InDelta(t, tc.want, Education(job, resume).Score, 0.001, "candidate %s", tc.candidate)
	}
}

func TestEducation_NoRequirement(t *testing.T) {
	job := &types.ExtractedDocument{RawText: "j"}
	resume := &types.ExtractedDocument{RawText: "r", Education: types.EducationHighschool}

	result := Education(job, resume)

	assert.Equal(t, 1.0, result.Score)
	assert.Contains(t, result.Explanation, "no education requirement")
}

func TestEducation_RequirementWithoutCandidateData(t *testing.T) {
	job := &types.ExtractedDocument{RawText: "j", Education: types.EducationBachelor}
	resume := &types.ExtractedDocument{RawText: "r"}

	result := Education(job, resume)

	assert.Equal(t, 0.5, result.Score)
	assert.Contains(t, result.Explanation, "could not be extracted")
}

func TestEducation_UnrecognizedLevelIsNeutral(t *testing.T) {
	job := &types.ExtractedDocument{RawText: "j", Education: types.EducationLevel("bootcamp")}
	resume := &types.ExtractedDocument{RawText: "r", Education: types.EducationBachelor}

	assert.Equal(t, 0.5, Education(job, resume).Score)
}
