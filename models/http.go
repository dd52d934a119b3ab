package models

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	// Message is safe to show to the end user.
	Message string `json:"message"`

	// Field names the offending request field for validation failures.
	Field string `json:"field,omitempty"`
}

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}
