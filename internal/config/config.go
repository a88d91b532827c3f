// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-matcher/internal/scoring"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Scoring weights; either all four are set and sum to 1.0, or all
	// are omitted and the defaults apply. Pointers distinguish an
	// explicit zero weight from an omitted one.
	SemanticWeight   *float64 `json:"semantic_weight,omitempty"`
	SkillsWeight     *float64 `json:"skills_weight,omitempty"`
	ExperienceWeight *float64 `json:"experience_weight,omitempty"`
	EducationWeight  *float64 `json:"education_weight,omitempty"`

	// Matching behavior
	FuzzyThreshold float64 `json:"fuzzy_threshold,omitempty"`  // Fuzzy skill-match threshold (0.0-1.0)
	MinSkillImpact float64 `json:"min_skill_impact,omitempty"` // Minimum per-skill impact to list missing skills by name

	// Embedding provider
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	EmbeddingModel string `json:"embedding_model,omitempty"` // Gemini embedding model name

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed score breakdown
	Port    int  `json:"port,omitempty"`    // HTTP server port for serve mode
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. The weight
// sum itself is validated when the scoring engine is constructed, so a
// bad weight set is always rejected before any scoring attempt.
func (c *Config) Validate() error {
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 1 {
		return fmt.Errorf("config error: 'fuzzy_threshold' must be in [0,1]")
	}
	if c.MinSkillImpact < 0 || c.MinSkillImpact > 1 {
		return fmt.Errorf("config error: 'min_skill_impact' must be in [0,1]")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}

	setWeights := 0
	for _, w := range []*float64{c.SemanticWeight, c.SkillsWeight, c.ExperienceWeight, c.EducationWeight} {
		if w != nil {
			setWeights++
		}
	}
	if setWeights != 0 && setWeights != 4 {
		return fmt.Errorf("config error: either all four weights must be set or none")
	}

	return nil
}

// ScoringOptions converts the configuration into engine options. Unset
// weights select the engine defaults.
func (c *Config) ScoringOptions() scoring.Options {
	opts := scoring.Options{
		FuzzyThreshold: c.FuzzyThreshold,
		MinSkillImpact: c.MinSkillImpact,
	}

	if c.SemanticWeight != nil && c.SkillsWeight != nil &&
		c.ExperienceWeight != nil && c.EducationWeight != nil {
		opts.Weights = &scoring.Weights{
			Semantic:   *c.SemanticWeight,
			Skills:     *c.SkillsWeight,
			Experience: *c.ExperienceWeight,
			Education:  *c.EducationWeight,
		}
	}

	return opts
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.SemanticWeight == nil && result.SkillsWeight == nil &&
		result.ExperienceWeight == nil && result.EducationWeight == nil {
		result.SemanticWeight = defaults.SemanticWeight
		result.SkillsWeight = defaults.SkillsWeight
		result.ExperienceWeight = defaults.ExperienceWeight
		result.EducationWeight = defaults.EducationWeight
	}

	if result.FuzzyThreshold == 0 {
		result.FuzzyThreshold = defaults.FuzzyThreshold
	}
	if result.MinSkillImpact == 0 {
		result.MinSkillImpact = defaults.MinSkillImpact
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
