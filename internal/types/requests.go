// Package types defines the request payloads accepted by the HTTP API,
// with validation rules attached.
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// AnalyzeRequest carries the non-file fields of an analysis submission.
// The resume itself arrives as a multipart file part. Exactly one of
// JobDescription or JobURL must be set.
type AnalyzeRequest struct {
	JobDescription string `json:"job_description" validate:"omitempty,min=10"`
	JobURL         string `json:"job_url" validate:"omitempty,url"`
	JobTitle       string `json:"job_title" validate:"omitempty,max=200"`
}

// Validate checks field constraints and the description/URL exclusivity rule.
func (r AnalyzeRequest) Validate() error {
	if r.JobDescription == "" && r.JobURL == "" {
		return fmt.Errorf("either job_description or job_url is required")
	}
	if r.JobDescription != "" && r.JobURL != "" {
		return fmt.Errorf("provide job_description or job_url, not both")
	}
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid analyze request: %w", err)
	}
	return nil
}

// EmailRequest asks the server to mail a PDF report for a stored analysis.
type EmailRequest struct {
	Recipient string `json:"recipient" validate:"required,email"`
}

func (r EmailRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid email request: %w", err)
	}
	return nil
}

// CompareRequest names two stored analyses to compare side by side.
type CompareRequest struct {
	A string `json:"a" validate:"required,uuid4"`
	B string `json:"b" validate:"required,uuid4"`
}

func (r CompareRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid compare request: %w", err)
	}
	if r.A == r.B {
		return fmt.Errorf("cannot compare an analysis with itself")
	}
	return nil
}
