package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ActionMessage respuesta simple con mensaje para operaciones sin cuerpo propio.
type ActionMessage struct {
	Message string `json:"message"`
}
