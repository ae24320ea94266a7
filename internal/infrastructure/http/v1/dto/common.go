// Package dto provides Data Transfer Objects for API requests/responses.
package dto

// dateLayout is the wire format for date-only fields.
const dateLayout = "2006-01-02"

// StatusResponse acknowledges an operation without data.
type StatusResponse struct {
	Status string `json:"status"`
}

// Deleted acknowledges a successful delete.
func Deleted() StatusResponse {
	return StatusResponse{Status: "deleted"}
}

// ErrorBody is the error payload rendered by the error middleware.
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorResponse wraps ErrorBody under the "error" key.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
