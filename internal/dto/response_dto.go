package dto

// ErrorResponse is the uniform error envelope for every handler.
type ErrorResponse struct {
	Error string `json:"error"`
}
