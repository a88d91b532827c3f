package skills

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultFuzzyThreshold is the minimum similarity for a fuzzy skill match.
const DefaultFuzzyThreshold = 0.85

// Matcher compares a required skill set against a candidate skill set,
// allowing fuzzy matches above a configured similarity threshold.
// A Matcher is immutable after construction and safe for concurrent use.
type Matcher struct {
	threshold float64
}

// NewMatcher creates a Matcher with the given fuzzy-match threshold.
// A threshold of 0 selects DefaultFuzzyThreshold.
func NewMatcher(threshold float64) *Matcher {
	if threshold == 0 {
		threshold = DefaultFuzzyThreshold
	}
	return &Matcher{threshold: threshold}
}

// Match compares the required skills against the candidate skills. Both
// sets are normalized first. A required skill is matched if it equals a
// candidate skill after normalization, or if its similarity to some
// candidate skill reaches the threshold. Each required skill counts at
// most once; the reported candidate term is the highest-similarity one,
// ties broken by lexicographic order. An empty required set yields a
// coverage ratio of 1.0.
func (m *Matcher) Match(required, candidate []string) *types.SkillMatchResult {
	reqSet := NormalizeSet(required)
	candSet := NormalizeSet(candidate)

	result := &types.SkillMatchResult{
		Matched: make([]types.MatchedSkill, 0, len(reqSet)),
		Missing: make([]string, 0),
	}

	if len(reqSet) == 0 {
		result.CoverageRatio = 1.0
		return result
	}

	for _, req := range reqSet {
		bestTerm := ""
		bestSim := 0.0
		// candSet is sorted, so a strict improvement keeps the
		// lexicographically smallest term among equal similarities.
		for _, cand := range candSet {
			sim := Similarity(req, cand)
			if sim > bestSim {
				bestSim = sim
				bestTerm = cand
			}
		}

		if bestTerm != "" && bestSim >= m.threshold {
			result.Matched = append(result.Matched, types.MatchedSkill{
				Skill:         req,
				CandidateTerm: bestTerm,
				Similarity:    bestSim,
			})
		} else {
			result.Missing = append(result.Missing, req)
		}
	}

	result.CoverageRatio = float64(len(result.Matched)) / float64(len(reqSet))
	return result
}

// Similarity returns a similarity measure in [0,1] between two normalized
// skill strings. It takes the better of the edit-distance ratio and the
// token Jaccard overlap, so both near-spellings ("kubernetes" vs
// "kubernets") and reordered multi-word skills score high.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	editRatio := editDistanceRatio(a, b)
	tokenRatio := tokenOverlapRatio(a, b)
	if tokenRatio > editRatio {
		return tokenRatio
	}
	return editRatio
}

func editDistanceRatio(a, b string) float64 {
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	ratio := 1.0 - float64(dist)/float64(maxLen)
	if ratio < 0 {
		return 0.0
	}
	return ratio
}

func tokenOverlapRatio(a, b string) float64 {
	tokensA := strings.Fields(a)
	tokensB := strings.Fields(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0.0
	}

	setA := make(map[string]bool, len(tokensA))
	for _, t := range tokensA {
		setA[t] = true
	}
	setB := make(map[string]bool, len(tokensB))
	for _, t := range tokensB {
		setB[t] = true
	}

	intersection := 0
	for t := range setA {
		if setB[t] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}
