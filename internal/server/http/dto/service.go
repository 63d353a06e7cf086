package dto

// ErrorResponse is returned for every rejected request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ServiceInfoResponse describes the running service.
type ServiceInfoResponse struct {
	Message  string   `json:"message"`
	Status   string   `json:"status"`
	Version  string   `json:"version"`
	Services []string `json:"services"`
}

// HealthResponse reports liveness of the service components.
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}
