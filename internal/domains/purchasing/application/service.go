package application

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	types "github.com/SHWFT/synqchain/internal/domains/purchasing/application/types"
	"github.com/SHWFT/synqchain/internal/domains/purchasing/domain"
	"github.com/SHWFT/synqchain/internal/domains/purchasing/ports"
	"github.com/SHWFT/synqchain/internal/shared/pagination"
)

// Service orchestrates the purchasing bounded context use cases.
type Service struct {
	repo ports.Repository
}

// NewService wires the purchasing service with its repository.
func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new purchase order in DRAFT.
func (s *Service) Create(ctx context.Context, input types.CreatePurchaseOrderInput) (*domain.PurchaseOrder, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = uuid.NewString()
	}
	po, err := domain.NewPurchaseOrder(id, input.Number, input.Vendor, input.Amount, input.Currency)
	if err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Create(ctx, po)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// GetByID loads a single purchase order.
func (s *Service) GetByID(ctx context.Context, input types.PurchaseOrderIdentifier) (*domain.PurchaseOrder, error) {
	po, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return po, nil
}

// List exposes every purchase order for the dashboard grid.
func (s *Service) List(ctx context.Context) ([]*domain.PurchaseOrder, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

// Submit advances a DRAFT purchase order to PENDING_APPROVAL.
func (s *Service) Submit(ctx context.Context, input types.TransitionInput) (*domain.PurchaseOrder, error) {
	po, err := s.repo.Submit(ctx, input.ID, input.Notes)
	if err != nil {
		return nil, mapError(err)
	}
	return po, nil
}

// Approve advances a PENDING_APPROVAL purchase order to APPROVED.
func (s *Service) Approve(ctx context.Context, input types.TransitionInput) (*domain.PurchaseOrder, error) {
	po, err := s.repo.Approve(ctx, input.ID, input.Notes)
	if err != nil {
		return nil, mapError(err)
	}
	return po, nil
}

// Events returns one page of the purchase order's transition log, oldest
// first. Missing or mangled paging values fall back to page 1 / size 20.
// A missing purchase order yields an empty page rather than an error.
func (s *Service) Events(ctx context.Context, input types.EventPageInput) (*pagination.Page[domain.Event], error) {
	page, pageSize := pagination.Clamp(input.Page, input.PageSize)
	result, err := s.repo.Events(ctx, input.ID, page, pageSize)
	if err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

func validateCreateInput(input types.CreatePurchaseOrderInput) error {
	return validation.ValidateStruct(&input,
		validation.Field(&input.Vendor, validation.Required.Error("vendor is required")),
		validation.Field(&input.Amount, validation.Min(0.0).Error("amount must be greater or equal to zero")),
		validation.Field(&input.Currency, validation.Length(3, 3).Error("currency must be a 3-letter code")),
	)
}

var _ ports.Service = (*Service)(nil)
