// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Seniority represents a categorical experience level on an ordinal scale.
type Seniority string

// Seniority levels from most junior to most senior
const (
	SeniorityJunior Seniority = "junior"
	SeniorityMid    Seniority = "mid"
	SenioritySenior Seniority = "senior"
	SeniorityLead   Seniority = "lead"
)

// seniorityRank maps seniority labels to numeric ranks for comparison
var seniorityRank = map[Seniority]int{
	SeniorityJunior: 0,
	SeniorityMid:    1,
	SenioritySenior: 2,
	SeniorityLead:   3,
}

// Rank returns the ordinal rank of the seniority level and whether the
// level is a recognized value. The empty string means unspecified.
func (s Seniority) Rank() (int, bool) {
	rank, ok := seniorityRank[s]
	return rank, ok
}

// Specified reports whether a seniority level was extracted at all.
func (s Seniority) Specified() bool {
	return s != ""
}

// EducationLevel represents a degree level on an ordinal scale.
type EducationLevel string

// Education levels from lowest to highest
const (
	EducationNone       EducationLevel = "none"
	EducationHighschool EducationLevel = "highschool"
	EducationBachelor   EducationLevel = "bachelor"
	EducationMaster     EducationLevel = "master"
	EducationPhD        EducationLevel = "phd"
)

// EducationLevelCount is the number of levels on the education scale.
const EducationLevelCount = 5

// educationRank maps degree levels to numeric ranks for comparison
var educationRank = map[EducationLevel]int{
	EducationNone:       0,
	EducationHighschool: 1,
	EducationBachelor:   2,
	EducationMaster:     3,
	EducationPhD:        4,
}

// Rank returns the ordinal rank of the education level and whether the
// level is a recognized value. The empty string means unspecified.
func (l EducationLevel) Rank() (int, bool) {
	rank, ok := educationRank[l]
	return rank, ok
}

// Specified reports whether an education level was extracted at all.
// Note that "none" is a real level, distinct from unspecified.
func (l EducationLevel) Specified() bool {
	return l != ""
}

// ExtractedDocument holds the raw text and best-effort structured fields
// handed over by an external parser for one resume or job description.
// Fields the parser could not extract are left unset, never defaulted,
// so that missing data is not mistaken for a zero requirement.
// An ExtractedDocument is immutable once constructed.
type ExtractedDocument struct {
	RawText         string         `json:"raw_text" validate:"required"`
	Skills          []string       `json:"skills,omitempty"`
	ExperienceYears *float64       `json:"experience_years,omitempty" validate:"omitempty,gte=0"`
	Seniority       Seniority      `json:"experience_seniority,omitempty" validate:"omitempty,oneof=junior mid senior lead"`
	Education       EducationLevel `json:"education_level,omitempty" validate:"omitempty,oneof=none highschool bachelor master phd"`
}
