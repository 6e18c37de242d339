package domain

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultStatus is applied when a project is created without one.
const DefaultStatus = "in-progress"

// Project is the aggregate managed by the projects bounded context.
type Project struct {
	ID     string
	Name   string
	Status string
	Budget float64
	Tags   []string
}

// Validate enforces invariants on the aggregate.
func (p *Project) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.Required.Error("name is required")),
		validation.Field(&p.Budget, validation.Min(0.0).Error("budget must be greater or equal to zero")),
	)
}

// ApplyDefaults fills omitted fields the way the dashboard expects.
func (p *Project) ApplyDefaults() {
	if p.Status == "" {
		p.Status = DefaultStatus
	}
}
