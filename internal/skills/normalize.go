// Package skills provides skill name normalization and fuzzy skill set matching.
package skills

import (
	"sort"
	"strings"
)

// skillAliases maps cleaned skill variants to canonical names. Keys must be
// in cleaned form (lowercase, separators collapsed) and canonical values
// must not themselves appear as keys, so normalization stays idempotent.
var skillAliases = map[string]string{
	"js":                  "javascript",
	"ecmascript":          "javascript",
	"ts":                  "typescript",
	"golang":              "go",
	"go lang":             "go",
	"reactjs":             "react",
	"react js":            "react",
	"vuejs":               "vue",
	"vue js":              "vue",
	"node js":             "nodejs",
	"node":                "nodejs",
	"k8s":                 "kubernetes",
	"postgres":            "postgresql",
	"psql":                "postgresql",
	"mongo":               "mongodb",
	"py":                  "python",
	"ml":                  "machine learning",
	"dl":                  "deep learning",
	"ai":                  "artificial intelligence",
	"nlp":                 "natural language processing",
	"gcp":                 "google cloud",
	"amazon web services": "aws",
	"ci cd":               "cicd",
	"ci":                  "cicd",
	"tf":                  "terraform",
}

// Normalize canonicalizes a raw skill string: trims whitespace, lowercases,
// strips non-alphanumeric separators except internal hyphens, collapses
// spaces, then resolves known aliases. Unknown terms pass through after
// cleaning. Normalize is total and idempotent.
func Normalize(raw string) string {
	cleaned := clean(raw)
	if canonical, ok := skillAliases[cleaned]; ok {
		return canonical
	}
	return cleaned
}

// clean lowercases and strips separators, keeping hyphens that sit inside
// a token (e.g. "e-commerce").
func clean(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	// Collapse spaces and drop hyphens left dangling at token edges
	tokens := strings.Fields(b.String())
	out := tokens[:0]
	for _, tok := range tokens {
		tok = strings.Trim(tok, "-")
		if tok != "" {
			out = append(out, tok)
		}
	}
	return strings.Join(out, " ")
}

// NormalizeSet normalizes every skill in the slice, drops empties,
// deduplicates, and returns the result sorted for deterministic iteration.
func NormalizeSet(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	normalized := make([]string, 0, len(raw))
	for _, skill := range raw {
		n := Normalize(skill)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		normalized = append(normalized, n)
	}
	sort.Strings(normalized)
	return normalized
}
