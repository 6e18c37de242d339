package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	projectsmemory "github.com/SHWFT/synqchain/internal/domains/projects/adapters/memory"
	"github.com/SHWFT/synqchain/internal/domains/projects/domain"
)

func TestCreate_AppliesDefaults(t *testing.T) {
	svc := NewService(projectsmemory.NewRepository())

	project, err := svc.Create(context.Background(), CreateProjectInput{Name: "Warehouse revamp"})
	require.NoError(t, err)
	require.NotEmpty(t, project.ID)
	require.Equal(t, domain.DefaultStatus, project.Status)
	require.Zero(t, project.Budget)
}

func TestCreate_HonorsProvidedFields(t *testing.T) {
	svc := NewService(projectsmemory.NewRepository())

	status := "on-hold"
	budget := 25000.0
	project, err := svc.Create(context.Background(), CreateProjectInput{
		Name:   "ERP migration",
		Status: &status,
		Budget: &budget,
		Tags:   []string{"erp", "q3"},
	})
	require.NoError(t, err)
	require.Equal(t, "on-hold", project.Status)
	require.Equal(t, 25000.0, project.Budget)
	require.Equal(t, []string{"erp", "q3"}, project.Tags)
}

func TestCreate_RequiresName(t *testing.T) {
	svc := NewService(projectsmemory.NewRepository())

	_, err := svc.Create(context.Background(), CreateProjectInput{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_ReturnsCreatedProjects(t *testing.T) {
	svc := NewService(projectsmemory.NewRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateProjectInput{Name: "First"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateProjectInput{Name: "Second"})
	require.NoError(t, err)

	projects, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.Equal(t, "First", projects[0].Name)
	require.Equal(t, "Second", projects[1].Name)
}
