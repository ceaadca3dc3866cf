package dto

// StatusResponse is the body of GET /
type StatusResponse struct {
	Msg string `json:"msg"`
}

// HealthResponse is the body of GET /healthz
type HealthResponse struct {
	Status string `json:"status"`
}
