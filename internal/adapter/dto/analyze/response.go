package analyze

// ErrorResponse is the wire shape for unrecoverable failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// CountResponse is returned by the counter endpoints.
type CountResponse struct {
	Count int64 `json:"count"`
}
