package ports

import (
	"context"

	types "github.com/SHWFT/synqchain/internal/domains/purchasing/application/types"
	"github.com/SHWFT/synqchain/internal/domains/purchasing/domain"
)

// WorkflowOrchestrator routes the submit transition through durable
// orchestration when configured, or executes it inline otherwise.
type WorkflowOrchestrator interface {
	SubmitPurchaseOrder(ctx context.Context, input types.TransitionInput) (*domain.PurchaseOrder, error)
}
