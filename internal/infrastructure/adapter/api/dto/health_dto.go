package dto

// HealthResponse is returned by GET /health
type HealthResponse struct {
	OK    bool           `json:"ok"`
	Error string         `json:"error,omitempty"`
	Pool  map[string]any `json:"pool,omitempty"`
}
