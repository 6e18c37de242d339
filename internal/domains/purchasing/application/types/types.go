package types

// CreatePurchaseOrderInput carries the fields accepted when registering a
// new purchase order. ID is optional; a UUID is generated when absent.
type CreatePurchaseOrderInput struct {
	ID       string
	Number   string
	Vendor   string
	Amount   float64
	Currency string
}

// PurchaseOrderIdentifier addresses a single purchase order.
type PurchaseOrderIdentifier struct {
	ID string
}

// TransitionInput carries a lifecycle transition request.
type TransitionInput struct {
	ID    string
	Notes string
}

// EventPageInput requests one page of a purchase order's event log.
// Zero or negative paging values fall back to defaults.
type EventPageInput struct {
	ID       string
	Page     int
	PageSize int
}
