package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultMinSkillImpact is the minimum per-skill contribution to the
// overall score for missing skills to be listed by name.
const DefaultMinSkillImpact = 0.02

// satisfiedThreshold is the component score at or above which no
// recommendation is produced for that dimension.
const satisfiedThreshold = 0.95

// lowSemanticThreshold is the semantic score below which a rephrasing
// suggestion is produced.
const lowSemanticThreshold = 0.5

// gap is one improvable dimension with its weighted score deficit.
type gap struct {
	severity float64
	priority int // fixed order for deterministic ties
	message  string
}

// recommend generates improvement suggestions from score gaps, ordered
// by severity (largest weighted deficit first). Dimensions at or above
// the satisfied threshold produce nothing.
func (e *Engine) recommend(
	components types.ScoreComponents,
	skillResult *types.SkillMatchResult,
	experience, education types.AlignmentScore,
) []string {
	gaps := make([]gap, 0, 4)

	if components.Skills < satisfiedThreshold && len(skillResult.Missing) > 0 {
		gaps = append(gaps, gap{
			severity: e.weights.Skills * (1 - components.Skills),
			priority: 0,
			message:  e.skillGapMessage(skillResult),
		})
	}

	if components.Experience < satisfiedThreshold {
		gaps = append(gaps, gap{
			severity: e.weights.Experience * (1 - components.Experience),
			priority: 1,
			message:  fmt.Sprintf("Highlight additional relevant experience: %s.", experience.Explanation),
		})
	}

	if components.Education < satisfiedThreshold {
		gaps = append(gaps, gap{
			severity: e.weights.Education * (1 - components.Education),
			priority: 2,
			message:  fmt.Sprintf("Consider addressing the education requirement: %s.", education.Explanation),
		})
	}

	if components.Semantic < lowSemanticThreshold {
		gaps = append(gaps, gap{
			severity: e.weights.Semantic * (1 - components.Semantic),
			priority: 3,
			message:  "Rephrase your resume to mirror the job description's terminology.",
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		if gaps[i].severity != gaps[j].severity {
			return gaps[i].severity > gaps[j].severity
		}
		return gaps[i].priority < gaps[j].priority
	})

	recommendations := make([]string, len(gaps))
	for i, g := range gaps {
		recommendations[i] = g.message
	}
	return recommendations
}

// skillGapMessage names the missing skills when each one carries enough
// weight to matter; with very long requirement lists the names are
// dropped in favor of a generic suggestion.
func (e *Engine) skillGapMessage(skillResult *types.SkillMatchResult) string {
	requiredCount := len(skillResult.Matched) + len(skillResult.Missing)
	if requiredCount == 0 {
		return "Add the skills the job posting asks for to your resume."
	}

	perSkillImpact := e.weights.Skills / float64(requiredCount)
	if perSkillImpact < e.minSkillImpact {
		return fmt.Sprintf("Add more of the %d required skills to your resume.", requiredCount)
	}

	return fmt.Sprintf("Add the missing skills to your resume: %s.", strings.Join(skillResult.Missing, ", "))
}
