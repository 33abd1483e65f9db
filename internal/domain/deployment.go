// Package domain holds the core model of a cleanup run: deployments,
// the candidate working set, retry policy and the error taxonomy the
// exit codes are derived from.
package domain

import "time"

// Environment is the Pages environment a deployment was built for.
type Environment string

const (
	EnvironmentProduction Environment = "production"
	EnvironmentPreview    Environment = "preview"
)

// Deployment is one Pages deployment as reported by the listing
// endpoint.
type Deployment struct {
	ID          string      `json:"id"`
	Environment Environment `json:"environment"`
	CreatedAt   time.Time   `json:"created_on"`
	URL         string      `json:"url"`
}

// IsProduction reports whether the deployment belongs to the
// production environment.
func (d Deployment) IsProduction() bool {
	return d.Environment == EnvironmentProduction
}
