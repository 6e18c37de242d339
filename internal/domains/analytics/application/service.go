package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/SHWFT/synqchain/internal/domains/analytics/ports"
)

// ErrBadAdapterPayload signals the adapter returned data that fails shape
// validation; relaying it would hand the dashboard garbage.
var ErrBadAdapterPayload = errors.New("erp adapter returned an invalid payload")

// Service relays ERP adapter data to the transport layer, validating the
// shape before responding.
type Service struct {
	adapter ports.ERPAdapter
}

func NewService(adapter ports.ERPAdapter) *Service {
	return &Service{adapter: adapter}
}

// Activity returns the dashboard activity feed.
func (s *Service) Activity(ctx context.Context) ([]ports.ActivityEntry, error) {
	if err := s.ensureAdapter(); err != nil {
		return nil, err
	}
	entries, err := s.adapter.Activity(ctx)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if err := validateActivityEntry(&entries[i]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadAdapterPayload, err)
		}
	}
	return entries, nil
}

// KPIs returns the dashboard headline numbers.
func (s *Service) KPIs(ctx context.Context) (*ports.KPISnapshot, error) {
	if err := s.ensureAdapter(); err != nil {
		return nil, err
	}
	snapshot, err := s.adapter.KPIs(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateKPISnapshot(snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadAdapterPayload, err)
	}
	return snapshot, nil
}

// Health reports whether the configured ERP backend is reachable.
func (s *Service) Health(ctx context.Context) (*ports.AdapterHealth, error) {
	if err := s.ensureAdapter(); err != nil {
		return nil, err
	}
	health, err := s.adapter.Health(ctx)
	if err != nil {
		return nil, err
	}
	if health == nil {
		return nil, fmt.Errorf("%w: empty health report", ErrBadAdapterPayload)
	}
	if health.CheckedAt.IsZero() {
		health.CheckedAt = time.Now().UTC()
	}
	return health, nil
}

func (s *Service) ensureAdapter() error {
	if s == nil || s.adapter == nil {
		return errors.New("erp adapter not configured")
	}
	return nil
}

func validateActivityEntry(entry *ports.ActivityEntry) error {
	return validation.ValidateStruct(entry,
		validation.Field(&entry.ID, validation.Required),
		validation.Field(&entry.Kind, validation.Required),
		validation.Field(&entry.Message, validation.Required),
		validation.Field(&entry.OccurredAt, validation.Required),
	)
}

func validateKPISnapshot(snapshot *ports.KPISnapshot) error {
	if snapshot == nil {
		return errors.New("empty snapshot")
	}
	return validation.ValidateStruct(snapshot,
		validation.Field(&snapshot.TotalSpend, validation.Min(0.0)),
		validation.Field(&snapshot.OpenPurchaseOrders, validation.Min(0)),
		validation.Field(&snapshot.PendingApprovals, validation.Min(0)),
		validation.Field(&snapshot.ActiveProjects, validation.Min(0)),
		validation.Field(&snapshot.GeneratedAt, validation.Required),
	)
}
