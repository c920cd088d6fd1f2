package dto

// ErrorResponse is the generic error body returned by handlers.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
