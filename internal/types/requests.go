package types

import (
	"github.com/go-playground/validator/v10"
)

// ScoreRequest represents a request to score one resume against one job description.
type ScoreRequest struct {
	Job    ExtractedDocument `json:"job" validate:"required"`
	Resume ExtractedDocument `json:"resume" validate:"required"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// BatchScoreRequest represents a request to score multiple resumes against one job description.
type BatchScoreRequest struct {
	Job     ExtractedDocument   `json:"job" validate:"required"`
	Resumes []ExtractedDocument `json:"resumes" validate:"required,min=1,dive"`
}

// Validate validates the BatchScoreRequest using the validator.
func (r *BatchScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
