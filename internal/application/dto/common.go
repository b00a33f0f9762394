package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DeleteResponse resultado de una eliminación (lógica o física).
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
