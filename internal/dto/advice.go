package dto

type AdviceResponse struct {
	Recommendations []string `json:"recommendations"`
}
