package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	types "github.com/SHWFT/synqchain/internal/domains/purchasing/application/types"
	"github.com/SHWFT/synqchain/internal/domains/purchasing/domain"
	"github.com/SHWFT/synqchain/internal/domains/purchasing/ports"
	"github.com/SHWFT/synqchain/internal/shared/pagination"
)

const tracerName = "github.com/SHWFT/synqchain/internal/domains/purchasing/adapters/observability/service"

// Service decorates the purchasing port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// Create registers a new purchase order with instrumentation.
func (s *Service) Create(ctx context.Context, input types.CreatePurchaseOrderInput) (*domain.PurchaseOrder, error) {
	ctx, span := s.startSpan(ctx, "Service.Create", attribute.String("po.vendor", input.Vendor))
	defer span.End()

	s.logInfo(ctx, "creating purchase order", slog.String("po.vendor", input.Vendor))
	result, err := s.inner.Create(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create purchase order", slog.String("po.vendor", input.Vendor))
	}
	if result != nil {
		s.metrics.recordCreated(ctx)
		s.logInfo(ctx, "purchase order created", slog.String("po.id", result.ID), slog.String("status", string(result.Status)))
	}
	return result, nil
}

// GetByID loads a single purchase order.
func (s *Service) GetByID(ctx context.Context, input types.PurchaseOrderIdentifier) (*domain.PurchaseOrder, error) {
	ctx, span := s.startSpan(ctx, "Service.GetByID", attribute.String("po.id", input.ID))
	defer span.End()

	result, err := s.inner.GetByID(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load purchase order", slog.String("po.id", input.ID))
	}
	return result, nil
}

// List exposes every purchase order.
func (s *Service) List(ctx context.Context) ([]*domain.PurchaseOrder, error) {
	ctx, span := s.startSpan(ctx, "Service.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list purchase orders")
	}
	span.SetAttributes(attribute.Int("po.result.count", len(result)))
	return result, nil
}

// Submit advances a purchase order to PENDING_APPROVAL.
func (s *Service) Submit(ctx context.Context, input types.TransitionInput) (*domain.PurchaseOrder, error) {
	ctx, span := s.startSpan(ctx, "Service.Submit", attribute.String("po.id", input.ID))
	defer span.End()

	s.logInfo(ctx, "submitting purchase order", slog.String("po.id", input.ID))
	result, err := s.inner.Submit(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to submit purchase order", slog.String("po.id", input.ID))
	}
	if result != nil {
		s.metrics.recordSubmitted(ctx)
		s.logInfo(ctx, "purchase order submitted", slog.String("po.id", result.ID), slog.String("status", string(result.Status)))
	}
	return result, nil
}

// Approve advances a purchase order to APPROVED.
func (s *Service) Approve(ctx context.Context, input types.TransitionInput) (*domain.PurchaseOrder, error) {
	ctx, span := s.startSpan(ctx, "Service.Approve", attribute.String("po.id", input.ID))
	defer span.End()

	s.logInfo(ctx, "approving purchase order", slog.String("po.id", input.ID))
	result, err := s.inner.Approve(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to approve purchase order", slog.String("po.id", input.ID))
	}
	if result != nil {
		s.metrics.recordApproved(ctx)
		s.logInfo(ctx, "purchase order approved", slog.String("po.id", result.ID), slog.String("status", string(result.Status)))
	}
	return result, nil
}

// Events returns one page of the purchase order's transition log.
func (s *Service) Events(ctx context.Context, input types.EventPageInput) (*pagination.Page[domain.Event], error) {
	ctx, span := s.startSpan(ctx, "Service.Events",
		attribute.String("po.id", input.ID),
		attribute.Int("page", input.Page),
		attribute.Int("page_size", input.PageSize),
	)
	defer span.End()

	result, err := s.inner.Events(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load purchase order events", slog.String("po.id", input.ID))
	}
	if result != nil {
		span.SetAttributes(attribute.Int64("po.events.total", result.Total))
	}
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	created   metric.Int64Counter
	submitted metric.Int64Counter
	approved  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("purchasing.service.created", metric.WithDescription("Number of purchase orders created"))
	submitted, _ := m.Int64Counter("purchasing.service.submitted", metric.WithDescription("Number of purchase orders submitted"))
	approved, _ := m.Int64Counter("purchasing.service.approved", metric.WithDescription("Number of purchase orders approved"))
	return serviceMetrics{created: created, submitted: submitted, approved: approved}
}

func (m serviceMetrics) recordCreated(ctx context.Context)   { addCounter(ctx, m.created, 1) }
func (m serviceMetrics) recordSubmitted(ctx context.Context) { addCounter(ctx, m.submitted, 1) }
func (m serviceMetrics) recordApproved(ctx context.Context)  { addCounter(ctx, m.approved, 1) }

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
