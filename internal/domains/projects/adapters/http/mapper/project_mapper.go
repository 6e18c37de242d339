package mapper

import (
	"github.com/SHWFT/synqchain/internal/domains/projects/application"
	"github.com/SHWFT/synqchain/internal/domains/projects/domain"
)

// CreateProject is the JSON payload accepted when creating a project.
type CreateProject struct {
	Name   string   `json:"name"`
	Status *string  `json:"status,omitempty"`
	Budget *float64 `json:"budget,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}

// Project is the JSON projection of the aggregate.
type Project struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Status string   `json:"status"`
	Budget float64  `json:"budget"`
	Tags   []string `json:"tags,omitempty"`
}

// ToCreateInput converts the creation payload to the application input.
func ToCreateInput(payload CreateProject) application.CreateProjectInput {
	return application.CreateProjectInput{
		Name:   payload.Name,
		Status: payload.Status,
		Budget: payload.Budget,
		Tags:   payload.Tags,
	}
}

// FromProject shapes a domain aggregate for the wire.
func FromProject(project *domain.Project) Project {
	if project == nil {
		return Project{}
	}
	return Project{
		ID:     project.ID,
		Name:   project.Name,
		Status: project.Status,
		Budget: project.Budget,
		Tags:   project.Tags,
	}
}

// FromProjectList shapes a list of aggregates for the wire.
func FromProjectList(projects []*domain.Project) []Project {
	out := make([]Project, 0, len(projects))
	for _, project := range projects {
		out = append(out, FromProject(project))
	}
	return out
}
