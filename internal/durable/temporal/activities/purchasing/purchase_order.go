package purchasing

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	types "github.com/SHWFT/synqchain/internal/domains/purchasing/application/types"
	"github.com/SHWFT/synqchain/internal/domains/purchasing/domain"
	purchasingports "github.com/SHWFT/synqchain/internal/domains/purchasing/ports"
)

const (
	// SubmitPurchaseOrderActivityName advances a purchase order to PENDING_APPROVAL.
	SubmitPurchaseOrderActivityName = "purchasing.activities.SubmitPurchaseOrder"

	// Application error types carried across the workflow boundary so the
	// orchestrator can rebuild the typed failures HTTP mapping relies on.
	ErrTypeNotFound          = "PurchaseOrderNotFound"
	ErrTypeInvalidTransition = "InvalidTransition"
)

// Activities groups activities that operate on the purchasing bounded context.
type Activities struct {
	service purchasingports.Service
}

// NewActivities wires the purchasing service into the Temporal activities bundle.
func NewActivities(service purchasingports.Service) *Activities {
	return &Activities{service: service}
}

// SubmitPurchaseOrder runs the submit transition. Lifecycle failures are
// non-retryable: retrying a failed status guard can never succeed.
func (a *Activities) SubmitPurchaseOrder(ctx context.Context, input types.TransitionInput) (*domain.PurchaseOrder, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("submit activity not initialized", "poId", input.ID)
		return nil, errors.New("submit activity not initialized")
	}
	logger.Info("SubmitPurchaseOrder activity started", "poId", input.ID)
	po, err := a.service.Submit(ctx, input)
	if err != nil {
		var invalid *domain.InvalidTransitionError
		switch {
		case errors.Is(err, purchasingports.ErrNotFound):
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeNotFound, err)
		case errors.As(err, &invalid):
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidTransition, err)
		}
		logger.Error("SubmitPurchaseOrder activity failed", "poId", input.ID, "error", err)
		return nil, err
	}
	logger.Info("SubmitPurchaseOrder activity completed", "poId", po.ID, "status", string(po.Status))
	return po, nil
}
