package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	purchasingactivities "github.com/SHWFT/synqchain/internal/durable/temporal/activities/purchasing"
	types "github.com/SHWFT/synqchain/internal/domains/purchasing/application/types"
	"github.com/SHWFT/synqchain/internal/domains/purchasing/domain"
)

// RunSubmissionSequence executes the ordered set of activities needed to
// submit a purchase order. Infrastructure failures retry; lifecycle
// failures surface immediately as non-retryable application errors.
func RunSubmissionSequence(ctx workflow.Context, input types.TransitionInput) (*domain.PurchaseOrder, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("purchase order submission sequence started", "poId", input.ID)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var po domain.PurchaseOrder
	err := workflow.ExecuteActivity(ctx, purchasingactivities.SubmitPurchaseOrderActivityName, input).Get(ctx, &po)
	if err != nil {
		logger.Error("purchase order submission sequence failed", "poId", input.ID, "error", err)
		return nil, err
	}
	logger.Info("purchase order submission sequence completed", "poId", po.ID)
	return &po, nil
}
