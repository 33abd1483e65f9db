// Package cloudflare implements the DeploymentAPI port against the
// Cloudflare Pages v4 API.
package cloudflare

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cfsweep/cfsweep-cli/internal/config"
	"github.com/cfsweep/cfsweep-cli/internal/domain"
)

// Client talks to the Pages deployments endpoints of a single project.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	log        *slog.Logger
}

// NewClient creates a client scoped to the configured account and
// project. The HTTP timeout applies per call, independent of any
// retry schedule above it.
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) *Client {
	base := strings.TrimSuffix(cfg.APIBaseURL, "/")
	return &Client{
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		baseURL:    fmt.Sprintf("%s/accounts/%s/pages/projects/%s", base, cfg.AccountID, cfg.Project),
		token:      cfg.APIToken,
		log:        log,
	}
}

// envelope is the standard Cloudflare v4 response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Errors  []apiMessage    `json:"errors"`
	Result  json.RawMessage `json:"result"`
}

type apiMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// deploymentRecord is the subset of the Pages deployment payload the
// tool depends on.
type deploymentRecord struct {
	ID          string    `json:"id"`
	Environment string    `json:"environment"`
	CreatedOn   time.Time `json:"created_on"`
	URL         string    `json:"url"`
}

// ListDeployments fetches all deployments for the project, in the
// order the API returns them (newest first). The endpoint is called
// without page/per_page: the Pages API rejects explicit pagination
// with error 8000024.
func (c *Client) ListDeployments(ctx context.Context) ([]domain.Deployment, error) {
	env, err := c.do(ctx, http.MethodGet, "/deployments")
	if err != nil {
		return nil, err
	}

	var records []deploymentRecord
	if err := json.Unmarshal(env.Result, &records); err != nil {
		return nil, fmt.Errorf("failed to decode deployment listing: %w", err)
	}

	deployments := make([]domain.Deployment, 0, len(records))
	for _, r := range records {
		deployments = append(deployments, domain.Deployment{
			ID:          r.ID,
			Environment: domain.Environment(r.Environment),
			CreatedAt:   r.CreatedOn,
			URL:         r.URL,
		})
	}
	c.log.Debug("fetched deployments", "count", len(deployments))
	return deployments, nil
}

// DeleteDeployment deletes one deployment by id. Failures come back as
// *domain.APIError carrying the HTTP status for retry classification.
func (c *Client) DeleteDeployment(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/deployments/"+id)
	return err
}

// do issues one request and validates both the HTTP status and the
// envelope's success flag.
func (c *Client) do(ctx context.Context, method, path string) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%s %s: reading response: %w", method, path, err)
	}

	var env envelope
	if len(body) > 0 {
		// A non-JSON error page still carries a meaningful status;
		// keep the raw body for the error message below.
		_ = json.Unmarshal(body, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return nil, &domain.APIError{
			Status:  resp.StatusCode,
			Method:  method,
			Path:    path,
			Message: errorMessage(env, body),
		}
	}
	return &env, nil
}

func errorMessage(env envelope, body []byte) string {
	if len(env.Errors) > 0 {
		parts := make([]string, 0, len(env.Errors))
		for _, e := range env.Errors {
			parts = append(parts, fmt.Sprintf("%d: %s", e.Code, e.Message))
		}
		return strings.Join(parts, "; ")
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
