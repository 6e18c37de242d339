package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SHWFT/synqchain/internal/domains/purchasing/domain"
	"github.com/SHWFT/synqchain/internal/domains/purchasing/ports"
)

func seedDraft(t *testing.T, repo *Repository, id string) {
	t.Helper()
	po, err := domain.NewPurchaseOrder(id, "", "Initech", 10, "USD")
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), po)
	require.NoError(t, err)
}

func TestSubmit_ConcurrentOnlyOneWins(t *testing.T) {
	repo := NewRepository()
	seedDraft(t, repo, "po-1")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Submit(context.Background(), "po-1", "")
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		var invalid *domain.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
	}
	require.Equal(t, 1, winners)

	po, err := repo.GetByID(context.Background(), "po-1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusPendingApproval, po.Status)

	page, err := repo.Events(context.Background(), "po-1", 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, domain.EventSubmitted, page.Items[0].Type)
}

func TestTransition_MissingPurchaseOrder(t *testing.T) {
	repo := NewRepository()

	_, err := repo.Submit(context.Background(), "ghost", "")
	require.ErrorIs(t, err, ports.ErrNotFound)
	_, err = repo.Approve(context.Background(), "ghost", "")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestTransition_AssignsEventIdentityAndTimestamp(t *testing.T) {
	repo := NewRepository()
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.WithClock(func() time.Time { return fixed })
	seedDraft(t, repo, "po-1")

	_, err := repo.Submit(context.Background(), "po-1", "ready")
	require.NoError(t, err)

	page, err := repo.Events(context.Background(), "po-1", 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.NotEmpty(t, page.Items[0].ID)
	require.Equal(t, fixed, page.Items[0].CreatedAt)
	require.Equal(t, "ready", page.Items[0].Notes)
}

func TestEvents_Pagination(t *testing.T) {
	repo := NewRepository()
	events := make([]domain.Event, 0, 25)
	for i := 0; i < 25; i++ {
		events = append(events, domain.Event{
			ID:              fmt.Sprintf("ev-%02d", i),
			PurchaseOrderID: "po-1",
			Type:            domain.EventSubmitted,
			CreatedAt:       time.Date(2025, 3, 1, 0, i, 0, 0, time.UTC),
		})
	}
	repo.seedEvents("po-1", events...)

	page, err := repo.Events(context.Background(), "po-1", 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 10)
	require.Equal(t, int64(25), page.Total)
	require.Equal(t, "ev-00", page.Items[0].ID)

	page, err = repo.Events(context.Background(), "po-1", 3, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 5)
	require.Equal(t, "ev-20", page.Items[0].ID)

	page, err = repo.Events(context.Background(), "po-1", 9, 10)
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Equal(t, int64(25), page.Total)
}

func TestGetByID_ReturnsCopy(t *testing.T) {
	repo := NewRepository()
	seedDraft(t, repo, "po-1")

	po, err := repo.GetByID(context.Background(), "po-1")
	require.NoError(t, err)
	po.Status = domain.StatusApproved

	again, err := repo.GetByID(context.Background(), "po-1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusDraft, again.Status)
}
