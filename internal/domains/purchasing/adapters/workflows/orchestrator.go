package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	types "github.com/SHWFT/synqchain/internal/domains/purchasing/application/types"
	"github.com/SHWFT/synqchain/internal/domains/purchasing/domain"
	"github.com/SHWFT/synqchain/internal/domains/purchasing/ports"
	purchasingactivities "github.com/SHWFT/synqchain/internal/durable/temporal/activities/purchasing"
	purchasingworkflows "github.com/SHWFT/synqchain/internal/durable/temporal/workflows/purchasing"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalSubmission)(nil)
	_ ports.WorkflowOrchestrator = (*InlineSubmission)(nil)
)

// TemporalSubmission starts purchasing workflows on a Temporal cluster.
type TemporalSubmission struct {
	client    client.Client
	taskQueue string
}

// NewTemporalSubmission wires a Temporal client into the orchestrator.
func NewTemporalSubmission(c client.Client) *TemporalSubmission {
	return &TemporalSubmission{client: c, taskQueue: purchasingworkflows.SubmissionTaskQueue}
}

// SubmitPurchaseOrder starts the Temporal workflow that runs the submit transition.
func (o *TemporalSubmission) SubmitPurchaseOrder(ctx context.Context, input types.TransitionInput) (*domain.PurchaseOrder, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal purchasing workflows not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("po-submission-%s-%s", input.ID, traceComponent),
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		purchasingworkflows.SubmissionWorkflow,
		purchasingworkflows.SubmissionWorkflowInput{Command: input, TraceID: traceComponent},
	)
	if err != nil {
		return nil, err
	}
	var po domain.PurchaseOrder
	if err := run.Get(ctx, &po); err != nil {
		return nil, decodeWorkflowError(err)
	}
	return &po, nil
}

// decodeWorkflowError rebuilds the typed repository failures that the
// submit activity wrapped into application errors, so HTTP status mapping
// behaves the same with and without Temporal in the path.
func decodeWorkflowError(err error) error {
	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) {
		return err
	}
	switch appErr.Type() {
	case purchasingactivities.ErrTypeNotFound:
		return ports.ErrNotFound
	case purchasingactivities.ErrTypeInvalidTransition:
		return &domain.InvalidTransitionError{Reason: appErr.Message()}
	default:
		return err
	}
}

// InlineSubmission executes the service directly without Temporal, useful
// for tests or dev fallbacks.
type InlineSubmission struct {
	service ports.Service
}

// NewInlineSubmission wraps the purchasing service for synchronous execution.
func NewInlineSubmission(service ports.Service) *InlineSubmission {
	return &InlineSubmission{service: service}
}

// SubmitPurchaseOrder delegates to the application service without durable orchestration.
func (o *InlineSubmission) SubmitPurchaseOrder(ctx context.Context, input types.TransitionInput) (*domain.PurchaseOrder, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline purchasing workflows not configured")
	}
	return o.service.Submit(ctx, input)
}

func workflowTraceComponent(ctx context.Context) string {
	traceComponent := workflowTraceID(ctx)
	if traceComponent != "" {
		return traceComponent
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	traceID := spanCtx.TraceID()
	if !traceID.IsValid() {
		return ""
	}
	return traceID.String()
}
