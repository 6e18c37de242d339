package postgres

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SHWFT/synqchain/internal/domains/purchasing/domain"
	"github.com/SHWFT/synqchain/internal/domains/purchasing/ports"
	"github.com/SHWFT/synqchain/internal/shared/pagination"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists purchase orders and their event log in PostgreSQL
// using GORM-mapped columns.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. The caller owns the
// DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		if err := db.AutoMigrate(&purchaseOrderRecord{}, &eventRecord{}); err != nil {
			log.Printf("postgres purchasing repository migration failed: %v", err)
		}
	}
	return repo
}

type purchaseOrderRecord struct {
	ID        string    `gorm:"primaryKey;column:id;size:64"`
	Number    string    `gorm:"column:number;index"`
	Vendor    string    `gorm:"column:vendor"`
	Amount    float64   `gorm:"column:amount"`
	Currency  string    `gorm:"column:currency;size:8"`
	Notes     string    `gorm:"column:notes"`
	Status    string    `gorm:"column:status;type:varchar(32);index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (purchaseOrderRecord) TableName() string { return "purchase_orders" }

// eventRecord rows never outlive their purchase order: the foreign key
// cascades deletes.
type eventRecord struct {
	ID              string              `gorm:"primaryKey;column:id;size:64"`
	PurchaseOrderID string              `gorm:"column:purchase_order_id;size:64;index"`
	PurchaseOrder   purchaseOrderRecord `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE"`
	Type            string              `gorm:"column:type;type:varchar(32)"`
	Notes           string              `gorm:"column:notes"`
	CreatedAt       time.Time           `gorm:"column:created_at;index"`
}

func (eventRecord) TableName() string { return "purchase_order_events" }

// Create inserts a new purchase order.
func (r *Repository) Create(ctx context.Context, po *domain.PurchaseOrder) (*domain.PurchaseOrder, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if po == nil {
		return nil, errors.New("purchase order is nil")
	}
	record := toRecord(po)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a purchase order by identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.PurchaseOrder, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record purchaseOrderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns every persisted purchase order.
func (r *Repository) List(ctx context.Context) ([]*domain.PurchaseOrder, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []purchaseOrderRecord
	if err := r.db.WithContext(ctx).Order("created_at").Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.PurchaseOrder, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

// Submit advances a DRAFT purchase order to PENDING_APPROVAL and appends
// a SUBMITTED event in the same transaction.
func (r *Repository) Submit(ctx context.Context, id, notes string) (*domain.PurchaseOrder, error) {
	return r.transition(ctx, id, notes, domain.StatusDraft, domain.StatusPendingApproval, domain.EventSubmitted, "submitted")
}

// Approve advances a PENDING_APPROVAL purchase order to APPROVED and
// appends an APPROVED event in the same transaction.
func (r *Repository) Approve(ctx context.Context, id, notes string) (*domain.PurchaseOrder, error) {
	return r.transition(ctx, id, notes, domain.StatusPendingApproval, domain.StatusApproved, domain.EventApproved, "approved")
}

// transition runs the status check-and-set plus event append atomically.
// The UPDATE is guarded on the expected status; when a concurrent
// transition wins the race the guard matches zero rows and the caller
// observes InvalidTransition instead of a lost update.
func (r *Repository) transition(ctx context.Context, id, notes string, from, to domain.Status, eventType domain.EventType, action string) (*domain.PurchaseOrder, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var result *domain.PurchaseOrder
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record purchaseOrderRecord
		if err := tx.First(&record, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ports.ErrNotFound
			}
			return err
		}
		updates := map[string]any{
			"status":     string(to),
			"updated_at": gorm.Expr("NOW()"),
		}
		if strings.TrimSpace(notes) != "" {
			updates["notes"] = notes
		}
		res := tx.Model(&purchaseOrderRecord{}).
			Where("id = ? AND status = ?", id, string(from)).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &domain.InvalidTransitionError{Reason: "only " + string(from) + " purchase orders can be " + action}
		}
		event := eventRecord{
			ID:              uuid.NewString(),
			PurchaseOrderID: id,
			Type:            string(eventType),
			Notes:           notes,
		}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		var updated purchaseOrderRecord
		if err := tx.First(&updated, "id = ?", id).Error; err != nil {
			return err
		}
		result = updated.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Events returns one page of a purchase order's transition log, oldest
// first. A missing purchase order yields an empty page rather than an
// error; callers that need existence check GetByID separately.
func (r *Repository) Events(ctx context.Context, id string, page, pageSize int) (*pagination.Page[domain.Event], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	page, pageSize = pagination.Clamp(page, pageSize)
	var total int64
	if err := r.db.WithContext(ctx).Model(&eventRecord{}).
		Where("purchase_order_id = ?", id).
		Count(&total).Error; err != nil {
		return nil, err
	}
	var records []eventRecord
	if err := r.db.WithContext(ctx).
		Where("purchase_order_id = ?", id).
		Order("created_at, id").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error; err != nil {
		return nil, err
	}
	items := make([]domain.Event, 0, len(records))
	for i := range records {
		items = append(items, records[i].toDomain())
	}
	return &pagination.Page[domain.Event]{Items: items, Page: page, PageSize: pageSize, Total: total}, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres purchasing repository not configured")
	}
	return nil
}

func toRecord(po *domain.PurchaseOrder) purchaseOrderRecord {
	return purchaseOrderRecord{
		ID:       po.ID,
		Number:   po.Number,
		Vendor:   po.Vendor,
		Amount:   po.Amount,
		Currency: po.Currency,
		Notes:    po.Notes,
		Status:   string(po.Status),
	}
}

func (r purchaseOrderRecord) toDomain() *domain.PurchaseOrder {
	return &domain.PurchaseOrder{
		ID:       r.ID,
		Number:   r.Number,
		Vendor:   r.Vendor,
		Amount:   r.Amount,
		Currency: r.Currency,
		Notes:    r.Notes,
		Status:   domain.Status(r.Status),
	}
}

func (r eventRecord) toDomain() domain.Event {
	return domain.Event{
		ID:              r.ID,
		PurchaseOrderID: r.PurchaseOrderID,
		Type:            domain.EventType(r.Type),
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
	}
}
