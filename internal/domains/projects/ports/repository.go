package ports

import (
	"context"
	"errors"

	"github.com/SHWFT/synqchain/internal/domains/projects/domain"
)

var ErrNotFound = errors.New("project not found")

type Repository interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
}
