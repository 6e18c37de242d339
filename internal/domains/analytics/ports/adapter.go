package ports

import (
	"context"
	"time"
)

// ActivityEntry is one row of the dashboard activity feed.
type ActivityEntry struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Message    string    `json:"message"`
	Actor      string    `json:"actor,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// KPISnapshot aggregates the dashboard headline numbers.
type KPISnapshot struct {
	TotalSpend         float64   `json:"totalSpend"`
	OpenPurchaseOrders int       `json:"openPurchaseOrders"`
	PendingApprovals   int       `json:"pendingApprovals"`
	ActiveProjects     int       `json:"activeProjects"`
	GeneratedAt        time.Time `json:"generatedAt"`
}

// AdapterHealth reports whether the configured ERP backend is reachable.
type AdapterHealth struct {
	Adapter   string    `json:"adapter"`
	Healthy   bool      `json:"healthy"`
	Detail    string    `json:"detail,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// ERPAdapter is the swappable boundary to the system supplying activity,
// KPI, and health data. Implementations: the embedded adapter backed by
// this service's own repositories, and the remote JSON client.
type ERPAdapter interface {
	Activity(ctx context.Context) ([]ActivityEntry, error)
	KPIs(ctx context.Context) (*KPISnapshot, error)
	Health(ctx context.Context) (*AdapterHealth, error)
}
