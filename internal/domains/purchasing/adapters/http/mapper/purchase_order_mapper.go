package mapper

import (
	"time"

	types "github.com/SHWFT/synqchain/internal/domains/purchasing/application/types"
	"github.com/SHWFT/synqchain/internal/domains/purchasing/domain"
	"github.com/SHWFT/synqchain/internal/shared/pagination"
)

// CreatePurchaseOrder is the JSON payload accepted when registering a PO.
type CreatePurchaseOrder struct {
	ID       string  `json:"id,omitempty"`
	Number   string  `json:"number,omitempty"`
	Vendor   string  `json:"vendor"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"`
}

// Transition is the JSON payload for submit/approve requests.
type Transition struct {
	Notes string `json:"notes,omitempty"`
}

// PurchaseOrder is the JSON projection of the aggregate.
type PurchaseOrder struct {
	ID       string  `json:"id"`
	Number   string  `json:"number,omitempty"`
	Vendor   string  `json:"vendor"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"`
	Notes    string  `json:"notes,omitempty"`
	Status   string  `json:"status"`
}

// Event is the JSON projection of one lifecycle transition.
type Event struct {
	ID        string    `json:"id"`
	POID      string    `json:"poId"`
	Type      string    `json:"type"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// EventPage is the paginated event log response.
type EventPage struct {
	Items    []Event `json:"items"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
	Total    int64   `json:"total"`
}

// ToCreateInput converts the creation payload to the application input.
func ToCreateInput(payload CreatePurchaseOrder) types.CreatePurchaseOrderInput {
	return types.CreatePurchaseOrderInput{
		ID:       payload.ID,
		Number:   payload.Number,
		Vendor:   payload.Vendor,
		Amount:   payload.Amount,
		Currency: payload.Currency,
	}
}

// FromPurchaseOrder shapes a domain aggregate for the wire.
func FromPurchaseOrder(po *domain.PurchaseOrder) PurchaseOrder {
	if po == nil {
		return PurchaseOrder{}
	}
	return PurchaseOrder{
		ID:       po.ID,
		Number:   po.Number,
		Vendor:   po.Vendor,
		Amount:   po.Amount,
		Currency: po.Currency,
		Notes:    po.Notes,
		Status:   string(po.Status),
	}
}

// FromPurchaseOrderList shapes a list of aggregates for the wire.
func FromPurchaseOrderList(pos []*domain.PurchaseOrder) []PurchaseOrder {
	out := make([]PurchaseOrder, 0, len(pos))
	for _, po := range pos {
		out = append(out, FromPurchaseOrder(po))
	}
	return out
}

// FromEventPage shapes a paginated event log for the wire.
func FromEventPage(page *pagination.Page[domain.Event]) EventPage {
	if page == nil {
		return EventPage{Items: []Event{}}
	}
	items := make([]Event, 0, len(page.Items))
	for _, ev := range page.Items {
		items = append(items, Event{
			ID:        ev.ID,
			POID:      ev.PurchaseOrderID,
			Type:      string(ev.Type),
			Notes:     ev.Notes,
			Timestamp: ev.CreatedAt,
		})
	}
	return EventPage{
		Items:    items,
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
	}
}
