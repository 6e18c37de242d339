package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SHWFT/synqchain/internal/domains/purchasing/domain"
	"github.com/SHWFT/synqchain/internal/domains/purchasing/ports"
	"github.com/SHWFT/synqchain/internal/shared/pagination"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory purchasing persistence adapter. The mutex
// spans the whole check-and-set so concurrent transitions on the same
// purchase order cannot both succeed from the same starting state.
type Repository struct {
	mu     sync.Mutex
	orders map[string]*domain.PurchaseOrder
	events map[string][]domain.Event
	clock  func() time.Time
}

func NewRepository() *Repository {
	return &Repository{
		orders: map[string]*domain.PurchaseOrder{},
		events: map[string][]domain.Event{},
		clock:  time.Now,
	}
}

// WithClock overrides the event timestamp source, useful in tests.
func (r *Repository) WithClock(clock func() time.Time) {
	if clock != nil {
		r.clock = clock
	}
}

func (r *Repository) Create(_ context.Context, po *domain.PurchaseOrder) (*domain.PurchaseOrder, error) {
	if po == nil {
		return nil, errors.New("purchase order is nil")
	}
	clone := *po
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	po, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *po
	return &clone, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*domain.PurchaseOrder, 0, len(r.orders))
	for _, po := range r.orders {
		clone := *po
		list = append(list, &clone)
	}
	return list, nil
}

func (r *Repository) Submit(_ context.Context, id, notes string) (*domain.PurchaseOrder, error) {
	return r.transition(id, notes, func(po *domain.PurchaseOrder) (*domain.Event, error) {
		return po.Submit(notes)
	})
}

func (r *Repository) Approve(_ context.Context, id, notes string) (*domain.PurchaseOrder, error) {
	return r.transition(id, notes, func(po *domain.PurchaseOrder) (*domain.Event, error) {
		return po.Approve(notes)
	})
}

func (r *Repository) Events(_ context.Context, id string, page, pageSize int) (*pagination.Page[domain.Event], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return pagination.Slice(r.events[id], page, pageSize), nil
}

func (r *Repository) transition(id, _ string, apply func(*domain.PurchaseOrder) (*domain.Event, error)) (*domain.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	po, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *po
	event, err := apply(&clone)
	if err != nil {
		return nil, err
	}
	event.ID = uuid.NewString()
	event.CreatedAt = r.clock()
	r.orders[id] = &clone
	r.events[id] = append(r.events[id], *event)
	result := clone
	return &result, nil
}

// Reset drops every purchase order and event. Intended for contract
// test state handlers that rebuild fixtures between interactions.
func (r *Repository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = map[string]*domain.PurchaseOrder{}
	r.events = map[string][]domain.Event{}
}

// seedEvents appends raw events for a purchase order, bypassing the
// state machine. Test helper only.
func (r *Repository) seedEvents(id string, events ...domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[id] = append(r.events[id], events...)
}
