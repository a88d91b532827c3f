package align

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Education scores the candidate's degree level against the job's
// requirement on the ordinal scale none < highschool < bachelor < master
// < phd. Meeting or exceeding the required level scores 1.0; a shortfall
// degrades linearly with ordinal distance. An unspecified requirement is
// never penalized and scores 1.0.
func Education(job, resume *types.ExtractedDocument) types.AlignmentScore {
	required := job.Education
	candidate := resume.Education

	if !required.Specified() {
		return types.AlignmentScore{
			Score:       1.0,
			Explanation: "no education requirement specified",
		}
	}

	reqRank, reqOK := required.Rank()
	if !reqOK {
		return types.AlignmentScore{
			Score:       neutralScore,
			Explanation: fmt.Sprintf("unrecognized required education level %q", required),
		}
	}

	if !candidate.Specified() {
		return types.AlignmentScore{
			Score:       neutralScore,
			Explanation: "candidate education level could not be extracted",
		}
	}

	candRank, candOK := candidate.Rank()
	if !candOK {
		return types.AlignmentScore{
			Score:       neutralScore,
			Explanation: fmt.Sprintf("unrecognized candidate education level %q", candidate),
		}
	}

	if candRank >= reqRank {
		return types.AlignmentScore{
			Score:       1.0,
			Explanation: fmt.Sprintf("candidate education %q meets the required %q", candidate, required),
		}
	}

	distance := float64(reqRank - candRank)
	score := 1.0 - distance/float64(types.EducationLevelCount)
	if score < 0 {
		score = 0
	}
	return types.AlignmentScore{
		Score:       score,
		Explanation: fmt.Sprintf("candidate education %q is below the required %q", candidate, required),
	}
}
