package model

// HealthStatus represents the health check status
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// ServiceName is reported by the health check and used as the CLI name
const ServiceName = "gitlab-slack-notifier"
