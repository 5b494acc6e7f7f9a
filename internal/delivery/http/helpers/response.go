package helpers

import (
	"encoding/json"
	"net/http"

	"acaradashboard/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeNotFound         = "not_found"
	ErrCodeConflict         = "conflict"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeInternalError    = "internal_error"
)

// APIError is the error object in the standardized API response envelope.
// Fields is set only for validation_failed and maps a form field to its message.
// swagger:model APIError
type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// APIResponse is the standardized envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with the given data and error set to nil.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, APIResponse{Data: data, Error: nil})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSONErrorWithData(w, statusCode, code, message, nil)
}

// WriteJSONErrorWithData is WriteJSONError for failures that still report data,
// such as the state of a rejected submission.
func WriteJSONErrorWithData(w http.ResponseWriter, statusCode int, code, message string, data any) {
	writeJSON(w, statusCode, APIResponse{
		Data:  data,
		Error: &APIError{Code: code, Message: message},
	})
}

// WriteJSONValidationError writes a 400 validation_failed response listing every invalid field.
func WriteJSONValidationError(w http.ResponseWriter, fields domain.FieldErrors) {
	writeJSON(w, http.StatusBadRequest, APIResponse{
		Error: &APIError{
			Code:    ErrCodeValidationFailed,
			Message: "validation failed",
			Fields:  fields,
		},
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
