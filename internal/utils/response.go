package utils

// ErrorResponse is the error envelope every endpoint uses. The storefront
// and admin panel read the message from the "error" field.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the minimal acknowledgement for mutations that return
// no payload of their own.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

func NewSuccessResponse() SuccessResponse {
	return SuccessResponse{Success: true}
}

func NewSuccessMessage(message string) SuccessResponse {
	return SuccessResponse{Success: true, Message: message}
}
