package handlers

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
