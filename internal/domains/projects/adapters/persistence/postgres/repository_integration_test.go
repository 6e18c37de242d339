//go:build integration
// +build integration

// To enable gopls support for this file, add the following to your VSCode settings.json:
// "gopls": {
//   "buildFlags": ["-tags=integration"]
// }

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/SHWFT/synqchain/internal/domains/projects/domain"
	"github.com/SHWFT/synqchain/internal/domains/projects/ports"
	"github.com/SHWFT/synqchain/internal/platform/migrations"
)

func setupPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("synqchain_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestPostgresRepository_CreateRoundTripsTags(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	saved, err := repo.Create(context.Background(), &domain.Project{
		ID:     "pr-1",
		Name:   "ERP migration",
		Status: "in-progress",
		Budget: 25000,
		Tags:   []string{"erp", "q3"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"erp", "q3"}, saved.Tags)

	retrieved, err := repo.GetByID(context.Background(), "pr-1")
	require.NoError(t, err)
	assert.Equal(t, "ERP migration", retrieved.Name)
	assert.Equal(t, 25000.0, retrieved.Budget)
	assert.Equal(t, []string{"erp", "q3"}, retrieved.Tags)
}

func TestPostgresRepository_GetByIDMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	_, err := repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestPostgresRepository_ListOrdersByCreation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()
	_, err := repo.Create(ctx, &domain.Project{ID: "pr-1", Name: "First", Status: "in-progress"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Project{ID: "pr-2", Name: "Second", Status: "completed"})
	require.NoError(t, err)

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "First", projects[0].Name)
	assert.Equal(t, "Second", projects[1].Name)
}
