package services_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/apperrors"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	portsrepo "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/repositories"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/services"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/dto"
)

// memDayBookRepo is an in-memory day book with the same ordering contract
// as the SQL repository: ListEntries returns entries date ascending.
type memDayBookRepo struct {
	mu      sync.Mutex
	entries map[string]domain.DayBookEntry
}

func newMemDayBookRepo() *memDayBookRepo {
	return &memDayBookRepo{entries: make(map[string]domain.DayBookEntry)}
}

func (r *memDayBookRepo) FindEntryByID(ctx context.Context, entryID string) (*domain.DayBookEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[entryID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

func (r *memDayBookRepo) ListEntries(ctx context.Context) ([]domain.DayBookEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.DayBookEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memDayBookRepo) SaveEntry(ctx context.Context, entry domain.DayBookEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.EntryID] = entry
	return nil
}

func (r *memDayBookRepo) UpdateEntry(ctx context.Context, entry domain.DayBookEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[entry.EntryID]; !ok {
		return apperrors.ErrNotFound
	}
	r.entries[entry.EntryID] = entry
	return nil
}

func (r *memDayBookRepo) DeleteEntry(ctx context.Context, entryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[entryID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.entries, entryID)
	return nil
}

func (r *memDayBookRepo) UpdateBalances(ctx context.Context, balances map[string]decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, balance := range balances {
		e, ok := r.entries[id]
		if !ok {
			continue
		}
		e.Balance = balance
		r.entries[id] = e
	}
	return nil
}

var _ portsrepo.DayBookRepositoryFacade = (*memDayBookRepo)(nil)

func dayBookReq(day int, debit, credit string) dto.CreateDayBookEntryRequest {
	return dto.CreateDayBookEntryRequest{
		Date:        time.Date(2024, 2, day, 0, 0, 0, 0, time.UTC),
		Description: "entry",
		Debit:       decimal.RequireFromString(debit),
		Credit:      decimal.RequireFromString(credit),
	}
}

func listBalances(t *testing.T, repo *memDayBookRepo) []string {
	t.Helper()
	entries, err := repo.ListEntries(context.Background())
	require.NoError(t, err)
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Balance.String()
	}
	return out
}

func TestDayBook_BackdatedInsertRewritesAllBalances(t *testing.T) {
	repo := newMemDayBookRepo()
	svc := services.NewDayBookService(repo)
	ctx := context.Background()

	_, err := svc.CreateEntry(ctx, dayBookReq(10, "0", "1000"), "user-1")
	require.NoError(t, err)
	_, err = svc.CreateEntry(ctx, dayBookReq(20, "300", "0"), "user-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"1000", "700"}, listBalances(t, repo))

	// Inserting an earlier entry shifts every later balance
	_, err = svc.CreateEntry(ctx, dayBookReq(5, "200", "0"), "user-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"-200", "800", "500"}, listBalances(t, repo))
}

func TestDayBook_RecomputeAllIsIdempotent(t *testing.T) {
	repo := newMemDayBookRepo()
	svc := services.NewDayBookService(repo)
	ctx := context.Background()

	_, err := svc.CreateEntry(ctx, dayBookReq(1, "0", "500"), "user-1")
	require.NoError(t, err)
	_, err = svc.CreateEntry(ctx, dayBookReq(2, "100", "0"), "user-1")
	require.NoError(t, err)

	first := listBalances(t, repo)
	require.NoError(t, svc.RecomputeAll(ctx))
	require.NoError(t, svc.RecomputeAll(ctx))
	assert.Equal(t, first, listBalances(t, repo))
}

func TestDayBook_DeleteRecomputes(t *testing.T) {
	repo := newMemDayBookRepo()
	svc := services.NewDayBookService(repo)
	ctx := context.Background()

	e1, err := svc.CreateEntry(ctx, dayBookReq(1, "0", "500"), "user-1")
	require.NoError(t, err)
	_, err = svc.CreateEntry(ctx, dayBookReq(2, "200", "0"), "user-1")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEntry(ctx, e1.EntryID))
	assert.Equal(t, []string{"-200"}, listBalances(t, repo))
}

func TestDayBook_UpdateRecomputes(t *testing.T) {
	repo := newMemDayBookRepo()
	svc := services.NewDayBookService(repo)
	ctx := context.Background()

	e1, err := svc.CreateEntry(ctx, dayBookReq(1, "0", "500"), "user-1")
	require.NoError(t, err)
	_, err = svc.CreateEntry(ctx, dayBookReq(2, "200", "0"), "user-1")
	require.NoError(t, err)

	_, err = svc.UpdateEntry(ctx, e1.EntryID, dayBookReq(1, "0", "1000"), "user-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"1000", "800"}, listBalances(t, repo))
}

func TestDayBook_ConcurrentCreatesStayConsistent(t *testing.T) {
	repo := newMemDayBookRepo()
	svc := services.NewDayBookService(repo)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			_, err := svc.CreateEntry(ctx, dayBookReq(day, "0", "10"), "user-1")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// Whatever order the writes landed in, the stored balances must be
	// the exact prefix sums in date order.
	entries, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 20)

	running := decimal.Zero
	for _, e := range entries {
		running = running.Add(e.Credit).Sub(e.Debit)
		assert.True(t, e.Balance.Equal(running), "entry on %s: got %s want %s", e.Date, e.Balance, running)
	}
}
