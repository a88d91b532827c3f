// Package align scores candidate experience and education attributes
// against job requirements on a bounded [0,1] scale.
package align

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/types"
)

// seniorityScaleSpan is the rank distance between the lowest and highest
// seniority levels (junior..lead).
const seniorityScaleSpan = 3.0

// neutralScore is used when a requirement exists but the candidate
// attribute could not be extracted, so missing data is neither rewarded
// nor treated as a hard failure.
const neutralScore = 0.5

// Experience scores the candidate's experience against the job's
// requirement. A candidate meeting or exceeding the required minimum
// years scores 1.0; a shortfall degrades linearly to 0 at zero years.
// When numeric years are unavailable on either side, the categorical
// seniority labels are compared instead. An unspecified requirement is
// never penalized and scores 1.0.
func Experience(job, resume *types.ExtractedDocument) types.AlignmentScore {
	requiredYears := job.ExperienceYears
	candidateYears := resume.ExperienceYears

	if requiredYears == nil && !job.Seniority.Specified() {
		return types.AlignmentScore{
			Score:       1.0,
			Explanation: "no experience requirement specified",
		}
	}

	if requiredYears != nil && candidateYears != nil {
		return scoreYears(*requiredYears, *candidateYears)
	}

	// Seniority-label fallback when numeric years are missing on either side
	if job.Seniority.Specified() && resume.Seniority.Specified() {
		return scoreSeniority(job.Seniority, resume.Seniority)
	}

	return types.AlignmentScore{
		Score:       neutralScore,
		Explanation: "candidate experience could not be compared against the requirement",
	}
}

func scoreYears(required, candidate float64) types.AlignmentScore {
	if required <= 0 || candidate >= required {
		return types.AlignmentScore{
			Score:       1.0,
			Explanation: fmt.Sprintf("candidate has %.1f years, meeting the required %.1f", candidate, required),
		}
	}

	score := 1.0 - (required-candidate)/required
	if score < 0 {
		score = 0
	}
	return types.AlignmentScore{
		Score:       score,
		Explanation: fmt.Sprintf("candidate has %.1f of the required %.1f years", candidate, required),
	}
}

func scoreSeniority(required, candidate types.Seniority) types.AlignmentScore {
	reqRank, reqOK := required.Rank()
	candRank, candOK := candidate.Rank()
	if !reqOK || !candOK {
		return types.AlignmentScore{
			Score:       neutralScore,
			Explanation: fmt.Sprintf("unrecognized seniority level (%q vs %q)", required, candidate),
		}
	}

	if candRank >= reqRank {
		return types.AlignmentScore{
			Score:       1.0,
			Explanation: fmt.Sprintf("candidate seniority %q meets the required %q", candidate, required),
		}
	}

	diff := float64(reqRank - candRank)
	score := 1.0 - diff/seniorityScaleSpan
	if score < 0 {
		score = 0
	}
	return types.AlignmentScore{
		Score:       score,
		Explanation: fmt.Sprintf("candidate seniority %q is %d level(s) below the required %q", candidate, reqRank-candRank, required),
	}
}
