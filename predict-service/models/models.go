package models

// PredictRequest is the body of POST /predict. Title is a pointer so that
// an explicit empty string is accepted while a missing or null title is not.
type PredictRequest struct {
	Title       *string `json:"title" binding:"required"`
	Description *string `json:"description"`
}

type PredictResponse struct {
	PredictedHours float64 `json:"predicted_hours"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
