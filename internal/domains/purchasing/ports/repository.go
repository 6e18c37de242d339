package ports

import (
	"context"
	"errors"

	"github.com/SHWFT/synqchain/internal/domains/purchasing/domain"
	"github.com/SHWFT/synqchain/internal/shared/pagination"
)

var ErrNotFound = errors.New("purchase order not found")

// Repository owns purchase order records and their lifecycle. Submit and
// Approve check the current status, apply the new status, and append the
// transition event as one indivisible unit.
type Repository interface {
	Create(ctx context.Context, po *domain.PurchaseOrder) (*domain.PurchaseOrder, error)
	GetByID(ctx context.Context, id string) (*domain.PurchaseOrder, error)
	List(ctx context.Context) ([]*domain.PurchaseOrder, error)
	Submit(ctx context.Context, id, notes string) (*domain.PurchaseOrder, error)
	Approve(ctx context.Context, id, notes string) (*domain.PurchaseOrder, error)
	Events(ctx context.Context, id string, page, pageSize int) (*pagination.Page[domain.Event], error)
}
