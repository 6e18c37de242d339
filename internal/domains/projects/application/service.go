package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/SHWFT/synqchain/internal/domains/projects/domain"
	"github.com/SHWFT/synqchain/internal/domains/projects/ports"
)

// ErrInvalidInput signals the request violated a project invariant.
var ErrInvalidInput = errors.New("invalid project input")

// CreateProjectInput carries the fields accepted when creating a project.
// Status and Budget are optional and default to "in-progress" and 0.
type CreateProjectInput struct {
	Name   string
	Status *string
	Budget *float64
	Tags   []string
}

// Service exposes project use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the input, applies defaults, and persists the project.
func (s *Service) Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	project := &domain.Project{
		ID:   uuid.NewString(),
		Name: input.Name,
		Tags: append([]string{}, input.Tags...),
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.Budget != nil {
		project.Budget = *input.Budget
	}
	project.ApplyDefaults()
	if err := project.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.repo.Create(ctx, project)
}

// GetByID loads a single project.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// List exposes every project for the dashboard.
func (s *Service) List(ctx context.Context) ([]*domain.Project, error) {
	return s.repo.List(ctx)
}
