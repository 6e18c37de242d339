package purchasing

import (
	"go.temporal.io/sdk/workflow"

	types "github.com/SHWFT/synqchain/internal/domains/purchasing/application/types"
	"github.com/SHWFT/synqchain/internal/domains/purchasing/domain"
	"github.com/SHWFT/synqchain/internal/durable/temporal/sequences"
)

const (
	// SubmissionWorkflowName is the public identifier for registering the workflow.
	SubmissionWorkflowName = "purchasing.workflows.Submission"
	// SubmissionTaskQueue is the queue consumed by the worker processing purchasing workflows.
	SubmissionTaskQueue = "PO_SUBMISSION"
)

// SubmissionWorkflowInput captures the payload required to submit a purchase order.
type SubmissionWorkflowInput struct {
	Command types.TransitionInput
	TraceID string
}

// SubmissionWorkflow orchestrates the activities needed to submit a purchase order.
func SubmissionWorkflow(ctx workflow.Context, input SubmissionWorkflowInput) (*domain.PurchaseOrder, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("SubmissionWorkflow started", withTraceID(input.TraceID, "poId", input.Command.ID)...)
	po, err := sequences.RunSubmissionSequence(ctx, input.Command)
	if err != nil {
		logger.Error("SubmissionWorkflow failed", withTraceID(input.TraceID, "poId", input.Command.ID, "error", err)...)
		return nil, err
	}
	logger.Info("SubmissionWorkflow completed", withTraceID(input.TraceID, "poId", po.ID)...)
	return po, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
