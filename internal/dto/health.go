package dto

// HealthResponse is returned by the health check endpoints
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}
