package dto

// ErrorResponse is the wire shape of every error reply:
// {"error": string, "details"?: string} with an HTTP status in
// {400, 403, 404, 409, 429, 500}. Raw store error text never goes into
// either field.
type ErrorResponse struct {
	Error   string `json:"error" example:"resource not found"`
	Details string `json:"details,omitempty" example:"post not found"`
}

// NewErrorResponse creates a standard error response.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}

// WithDetails adds the optional details field.
func (e *ErrorResponse) WithDetails(details string) *ErrorResponse {
	e.Details = details
	return e
}
