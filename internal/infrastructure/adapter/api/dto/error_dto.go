package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// MessageResponse acknowledges a request that returns no data
type MessageResponse struct {
	Message string `json:"message"`
}
