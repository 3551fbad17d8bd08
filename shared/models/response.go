package models

import "net/http"

type GenericResponse struct {
	Error   bool        `json:"error"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Status  int         `json:"status"`
}

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ErrorResponse builds an error envelope; the status must be given.
func ErrorResponse(status int, message string, data interface{}) GenericResponse {
	return GenericResponse{
		Error:   true,
		Message: message,
		Data:    data,
		Status:  status,
	}
}

// ValidationErrorResponse is the 422 envelope for rejected request bodies.
func ValidationErrorResponse(fields []FieldError) GenericResponse {
	return ErrorResponse(http.StatusUnprocessableEntity, "invalid request data", fields)
}
