// Package scoring combines semantic similarity, skill coverage, and
// attribute alignment into a single weighted, explainable match score.
package scoring

import "fmt"

// ConfigurationError indicates invalid weights or thresholds, detected
// at engine construction. It is fatal to the scoring session.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// MalformedInputError indicates an ExtractedDocument that cannot be
// scored, such as missing raw text.
type MalformedInputError struct {
	Document string
	Message  string
}

func (e *MalformedInputError) Error() string {
	if e.Document != "" {
		return fmt.Sprintf("malformed input in %s: %s", e.Document, e.Message)
	}
	return fmt.Sprintf("malformed input: %s", e.Message)
}
