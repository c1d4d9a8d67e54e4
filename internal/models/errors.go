package models

// APIError represents a standardized error response format for the API.
// @Description APIError represents a standardized error response format, including an application-specific error code, a human-readable message, and optional details.
type APIError struct {
	Code    string      `json:"code"`              // Application-specific error code (e.g., "NOT_FOUND", "VALIDATION_ERROR")
	Message string      `json:"message"`           // Human-readable message describing the error
	Details interface{} `json:"details,omitempty"` // Optional field for additional error details
}

// Predefined application-specific error codes
const (
	// Generic Errors
	ErrorCodeInternalServerError = "INTERNAL_SERVER_ERROR"

	// Input Validation
	ErrorCodeValidation = "VALIDATION_ERROR"

	// Resource Specific Errors
	ErrorCodeHistoryDisabled = "HISTORY_DISABLED" // No query-log database configured
	ErrorCodeDatasetMissing  = "DATASET_MISSING"  // A dataset file is not on disk
)
