package handlers

// ErrorResponse is the JSON shape for request-level errors
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the JSON shape for simple confirmations
type SuccessResponse struct {
	Message string `json:"message"`
}
