package erpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SHWFT/synqchain/internal/domains/analytics/ports"
)

var _ ports.ERPAdapter = (*Client)(nil)

// Client talks JSON-over-HTTP to a remote ERP backend exposing
// /activity, /kpis, and /health.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient instantiates the remote ERP adapter with sane defaults.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("erp base URL is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{baseURL: baseURL, http: httpClient}, nil
}

// Activity fetches the remote activity feed.
func (c *Client) Activity(ctx context.Context) ([]ports.ActivityEntry, error) {
	var entries []ports.ActivityEntry
	if err := c.getJSON(ctx, "/activity", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// KPIs fetches the remote KPI snapshot.
func (c *Client) KPIs(ctx context.Context) (*ports.KPISnapshot, error) {
	var snapshot ports.KPISnapshot
	if err := c.getJSON(ctx, "/kpis", &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Health probes the remote backend. A transport failure is reported as an
// unhealthy adapter rather than an error so the dashboard can degrade.
func (c *Client) Health(ctx context.Context) (*ports.AdapterHealth, error) {
	health := &ports.AdapterHealth{Adapter: "remote", CheckedAt: time.Now().UTC()}
	var payload struct {
		Status string `json:"status"`
	}
	if err := c.getJSON(ctx, "/health", &payload); err != nil {
		health.Detail = err.Error()
		return health, nil
	}
	health.Healthy = strings.EqualFold(payload.Status, "ok") || strings.EqualFold(payload.Status, "healthy")
	if !health.Healthy {
		health.Detail = fmt.Sprintf("erp backend reported status %q", payload.Status)
	}
	return health, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if c == nil || c.http == nil {
		return errors.New("erp client not configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build erp request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call erp backend: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("erp backend %s returned %s", path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode erp response: %w", err)
	}
	return nil
}
