package dto

import "time"

// ErrorResponse is the standardized error body returned by every endpoint.
//
// Fields:
//   - Message: human readable summary of what failed.
//   - ErrorDetails: underlying error text, omitted when there is none.
//   - Timestamp: UTC time the error was produced.
type ErrorResponse struct {
	Message      string    `json:"message" example:"failed to aggregate volume"`
	ErrorDetails string    `json:"error,omitempty" example:"data acquisition failed: status 503"`
	Timestamp    time.Time `json:"timestamp" example:"2025-09-12T10:00:00Z"`
}

// NewErrorResponse builds an ErrorResponse; err may be nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

// Error implements the error interface so responses can travel through c.Error.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}
