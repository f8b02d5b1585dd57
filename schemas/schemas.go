// Package schemas embeds the JSON Schemas that define this service's
// external data contracts.
package schemas

import (
	_ "embed"

	internal "github.com/hassan/resume-analyzer/internal/schemas"
)

//go:embed analysis_result.schema.json
var analysisResultSchema string

// AnalysisResultSchema returns the schema for the engine's result payload.
func AnalysisResultSchema() string {
	return analysisResultSchema
}

// ValidateAnalysisResult checks a JSON payload against the analysis result
// contract.
func ValidateAnalysisResult(jsonContent string) error {
	return internal.ValidateJSONString(analysisResultSchema, jsonContent)
}
