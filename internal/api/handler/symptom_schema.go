package handler

type logSymptomRequest struct {
	Input string `json:"input" validate:"required,min=10"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}
