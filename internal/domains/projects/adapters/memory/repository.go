package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/SHWFT/synqchain/internal/domains/projects/domain"
	"github.com/SHWFT/synqchain/internal/domains/projects/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory project persistence adapter.
type Repository struct {
	mu       sync.RWMutex
	projects map[string]*domain.Project
	order    []string
}

func NewRepository() *Repository {
	return &Repository{projects: map[string]*domain.Project{}}
}

func (r *Repository) Create(_ context.Context, project *domain.Project) (*domain.Project, error) {
	if project == nil {
		return nil, errors.New("project is nil")
	}
	clone := cloneProject(project)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.projects[clone.ID]; !exists {
		r.order = append(r.order, clone.ID)
	}
	r.projects[clone.ID] = clone
	return cloneProject(clone), nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	project, ok := r.projects[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneProject(project), nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Project, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, cloneProject(r.projects[id]))
	}
	return list, nil
}

func cloneProject(p *domain.Project) *domain.Project {
	clone := *p
	if len(p.Tags) > 0 {
		clone.Tags = append([]string{}, p.Tags...)
	}
	return &clone
}
