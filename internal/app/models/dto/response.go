package dto

// HealthResponse is returned by the liveness probe
type HealthResponse struct {
	Status    string `json:"status" example:"Acad Service is running"`
	Timestamp string `json:"timestamp" example:"2025-04-23T12:01:05+07:00"`
}

// ReadinessResponse is returned by the readiness probe
type ReadinessResponse struct {
	Status   string `json:"status" example:"ready"`
	Database string `json:"database" example:"up"`
}
