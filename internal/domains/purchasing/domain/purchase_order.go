package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Status represents the lifecycle state of a purchase order.
type Status string

const (
	StatusDraft           Status = "DRAFT"
	StatusPendingApproval Status = "PENDING_APPROVAL"
	StatusApproved        Status = "APPROVED"
)

// EventType tags a recorded lifecycle transition.
type EventType string

const (
	EventSubmitted EventType = "SUBMITTED"
	EventApproved  EventType = "APPROVED"
)

var (
	ErrEmptyVendor   = errors.New("purchase order vendor is required")
	ErrInvalidAmount = errors.New("purchase order amount must be greater or equal to zero")
	ErrInvalidStatus = errors.New("purchase order status is invalid")
)

// InvalidTransitionError signals a requested state change that violates
// the lifecycle's allowed edges. It is distinguishable from a missing
// purchase order so callers can map the two to different responses.
type InvalidTransitionError struct {
	Reason string
}

func (e *InvalidTransitionError) Error() string { return e.Reason }

func invalidTransition(expected Status, action string) *InvalidTransitionError {
	return &InvalidTransitionError{Reason: fmt.Sprintf("only %s purchase orders can be %s", expected, action)}
}

// PurchaseOrder is the aggregate managed by the purchasing bounded context.
// Status only advances DRAFT -> PENDING_APPROVAL -> APPROVED.
type PurchaseOrder struct {
	ID       string
	Number   string
	Vendor   string
	Amount   float64
	Currency string
	Notes    string
	Status   Status
}

// Event is the immutable record of one lifecycle transition. ID and
// CreatedAt are assigned by the repository that appends it.
type Event struct {
	ID              string
	PurchaseOrderID string
	Type            EventType
	Notes           string
	CreatedAt       time.Time
}

// NewPurchaseOrder validates invariants and builds a DRAFT purchase order.
func NewPurchaseOrder(id, number, vendor string, amount float64, currency string) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		ID:       id,
		Number:   number,
		Vendor:   vendor,
		Amount:   amount,
		Currency: currency,
		Status:   StatusDraft,
	}
	if err := po.Validate(); err != nil {
		return nil, err
	}
	return po, nil
}

// Validate enforces invariants on the aggregate.
func (po *PurchaseOrder) Validate() error {
	if strings.TrimSpace(po.Vendor) == "" {
		return ErrEmptyVendor
	}
	if po.Amount < 0 {
		return ErrInvalidAmount
	}
	if !isValidStatus(po.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// Submit advances a DRAFT purchase order to PENDING_APPROVAL and returns
// the transition event to append. Notes are stored when given.
func (po *PurchaseOrder) Submit(notes string) (*Event, error) {
	if po.Status != StatusDraft {
		return nil, invalidTransition(StatusDraft, "submitted")
	}
	po.Status = StatusPendingApproval
	if strings.TrimSpace(notes) != "" {
		po.Notes = notes
	}
	return &Event{PurchaseOrderID: po.ID, Type: EventSubmitted, Notes: notes}, nil
}

// Approve advances a PENDING_APPROVAL purchase order to APPROVED, the
// terminal state, and returns the transition event to append.
func (po *PurchaseOrder) Approve(notes string) (*Event, error) {
	if po.Status != StatusPendingApproval {
		return nil, invalidTransition(StatusPendingApproval, "approved")
	}
	po.Status = StatusApproved
	if strings.TrimSpace(notes) != "" {
		po.Notes = notes
	}
	return &Event{PurchaseOrderID: po.ID, Type: EventApproved, Notes: notes}, nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusDraft, StatusPendingApproval, StatusApproved:
		return true
	default:
		return false
	}
}
