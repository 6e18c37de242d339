package embedded

import (
	"context"
	"fmt"
	"strings"
	"time"

	analyticsports "github.com/SHWFT/synqchain/internal/domains/analytics/ports"
	projectsports "github.com/SHWFT/synqchain/internal/domains/projects/ports"
	purchasingdomain "github.com/SHWFT/synqchain/internal/domains/purchasing/domain"
	purchasingports "github.com/SHWFT/synqchain/internal/domains/purchasing/ports"
)

var _ analyticsports.ERPAdapter = (*Adapter)(nil)

// Adapter is the embedded ERP mode: activity and KPIs are derived from
// this service's own purchasing and projects repositories instead of a
// remote system.
type Adapter struct {
	purchasing purchasingports.Repository
	projects   projectsports.Repository
	clock      func() time.Time
}

// New wires the embedded adapter over the local repositories.
func New(purchasing purchasingports.Repository, projects projectsports.Repository) *Adapter {
	return &Adapter{purchasing: purchasing, projects: projects, clock: time.Now}
}

// WithClock overrides the timestamp source, useful in tests.
func (a *Adapter) WithClock(clock func() time.Time) {
	if clock != nil {
		a.clock = clock
	}
}

// Activity derives a feed entry per purchase order and project.
func (a *Adapter) Activity(ctx context.Context) ([]analyticsports.ActivityEntry, error) {
	now := a.clock().UTC()
	entries := []analyticsports.ActivityEntry{}
	orders, err := a.purchasing.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, po := range orders {
		entries = append(entries, analyticsports.ActivityEntry{
			ID:         "po-" + po.ID,
			Kind:       "purchase-order",
			Message:    fmt.Sprintf("purchase order %s is %s", poLabel(po), strings.ToLower(string(po.Status))),
			OccurredAt: now,
		})
	}
	projects, err := a.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, project := range projects {
		entries = append(entries, analyticsports.ActivityEntry{
			ID:         "project-" + project.ID,
			Kind:       "project",
			Message:    fmt.Sprintf("project %q is %s", project.Name, project.Status),
			OccurredAt: now,
		})
	}
	return entries, nil
}

// KPIs aggregates the dashboard headline numbers from the repositories.
func (a *Adapter) KPIs(ctx context.Context) (*analyticsports.KPISnapshot, error) {
	orders, err := a.purchasing.List(ctx)
	if err != nil {
		return nil, err
	}
	snapshot := &analyticsports.KPISnapshot{GeneratedAt: a.clock().UTC()}
	for _, po := range orders {
		snapshot.TotalSpend += po.Amount
		switch po.Status {
		case purchasingdomain.StatusDraft:
			snapshot.OpenPurchaseOrders++
		case purchasingdomain.StatusPendingApproval:
			snapshot.OpenPurchaseOrders++
			snapshot.PendingApprovals++
		}
	}
	projects, err := a.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, project := range projects {
		if project.Status == "in-progress" {
			snapshot.ActiveProjects++
		}
	}
	return snapshot, nil
}

// Health always reports healthy: the embedded mode has no remote hop.
func (a *Adapter) Health(_ context.Context) (*analyticsports.AdapterHealth, error) {
	return &analyticsports.AdapterHealth{
		Adapter:   "embedded",
		Healthy:   true,
		Detail:    "embedded datastore",
		CheckedAt: a.clock().UTC(),
	}, nil
}

func poLabel(po *purchasingdomain.PurchaseOrder) string {
	if po.Number != "" {
		return po.Number
	}
	return po.ID
}
