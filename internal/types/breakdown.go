package types

// MatchedSkill records a required skill that was found in the candidate's
// skill set, along with the candidate term it matched and the similarity
// of that match (1.0 for exact matches after normalization).
type MatchedSkill struct {
	Skill         string  `json:"skill"`
	CandidateTerm string  `json:"candidate_term"`
	Similarity    float64 `json:"similarity"`
}

// SkillMatchResult holds the outcome of comparing a job's required skill
// set against a candidate's skill set. Matched and Missing cover the
// required side only and are sorted for deterministic output.
type SkillMatchResult struct {
	Matched       []MatchedSkill `json:"matched"`
	Missing       []string       `json:"missing"`
	CoverageRatio float64        `json:"coverage_ratio"`
}

// MatchedNames returns the names of the matched required skills.
func (r *SkillMatchResult) MatchedNames() []string {
	names := make([]string, len(r.Matched))
	for i, m := range r.Matched {
		names[i] = m.Skill
	}
	return names
}

// AlignmentScore holds a bounded per-attribute alignment score with a
// human-readable explanation of how it was derived.
type AlignmentScore struct {
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// ScoreComponents holds the four weighted sub-scores, each in [0,1].
type ScoreComponents struct {
	Semantic   float64 `json:"semantic"`
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
}

// ScoreBreakdown is the full result of scoring one resume against one
// job description. It is created and populated by the scoring engine and
// never mutated afterwards; downstream consumers read it immutably.
type ScoreBreakdown struct {
	Overall         float64         `json:"overall"`
	Interpretation  string          `json:"interpretation"`
	Components      ScoreComponents `json:"components"`
	MatchedSkills   []MatchedSkill  `json:"matched_skills"`
	MissingSkills   []string        `json:"missing_skills"`
	Recommendations []string        `json:"recommendations"`

	// Explanations for the attribute alignments
	ExperienceDetail string `json:"experience_detail,omitempty"`
	EducationDetail  string `json:"education_detail,omitempty"`

	// Counts mirror the skill lists for quick display
	RequiredSkillCount int `json:"required_skill_count"`
	MatchedSkillCount  int `json:"matched_skill_count"`
	MissingSkillCount  int `json:"missing_skill_count"`
}
