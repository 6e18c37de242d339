package postgres

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/SHWFT/synqchain/internal/domains/projects/domain"
	"github.com/SHWFT/synqchain/internal/domains/projects/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists projects in PostgreSQL using GORM-mapped columns.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		if err := db.AutoMigrate(&projectRecord{}); err != nil {
			log.Printf("postgres project repository migration failed: %v", err)
		}
	}
	return repo
}

type projectRecord struct {
	ID        string         `gorm:"primaryKey;column:id;size:64"`
	Name      string         `gorm:"column:name"`
	Status    string         `gorm:"column:status;type:varchar(32);index"`
	Budget    float64        `gorm:"column:budget"`
	Tags      pq.StringArray `gorm:"column:tags;type:text[]"`
	CreatedAt time.Time      `gorm:"column:created_at;index"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (projectRecord) TableName() string { return "projects" }

// Create inserts a new project.
func (r *Repository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errors.New("project is nil")
	}
	record := toRecord(project)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a project by identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record projectRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns every persisted project, oldest first.
func (r *Repository) List(ctx context.Context) ([]*domain.Project, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []projectRecord
	if err := r.db.WithContext(ctx).Order("created_at").Find(&records).Error; err != nil {
		return nil, err
	}
	projects := make([]*domain.Project, 0, len(records))
	for i := range records {
		projects = append(projects, records[i].toDomain())
	}
	return projects, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres project repository not configured")
	}
	return nil
}

func toRecord(project *domain.Project) projectRecord {
	rec := projectRecord{
		ID:     project.ID,
		Name:   project.Name,
		Status: project.Status,
		Budget: project.Budget,
	}
	if len(project.Tags) > 0 {
		rec.Tags = pq.StringArray(append([]string{}, project.Tags...))
	}
	return rec
}

func (r projectRecord) toDomain() *domain.Project {
	project := &domain.Project{
		ID:     r.ID,
		Name:   r.Name,
		Status: r.Status,
		Budget: r.Budget,
	}
	if len(r.Tags) > 0 {
		project.Tags = append([]string{}, r.Tags...)
	}
	return project
}
