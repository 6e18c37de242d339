package ports

import (
	"context"

	types "github.com/SHWFT/synqchain/internal/domains/purchasing/application/types"
	"github.com/SHWFT/synqchain/internal/domains/purchasing/domain"
	"github.com/SHWFT/synqchain/internal/shared/pagination"
)

// Service exposes the purchasing use cases consumed by transport and
// workflow adapters.
type Service interface {
	Create(ctx context.Context, input types.CreatePurchaseOrderInput) (*domain.PurchaseOrder, error)
	GetByID(ctx context.Context, input types.PurchaseOrderIdentifier) (*domain.PurchaseOrder, error)
	List(ctx context.Context) ([]*domain.PurchaseOrder, error)
	Submit(ctx context.Context, input types.TransitionInput) (*domain.PurchaseOrder, error)
	Approve(ctx context.Context, input types.TransitionInput) (*domain.PurchaseOrder, error)
	Events(ctx context.Context, input types.EventPageInput) (*pagination.Page[domain.Event], error)
}
