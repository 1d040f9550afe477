package services

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	portsrepo "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/repositories"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/dto"
)

// daybookService implements the DayBookSvcFacade interface.
//
// All mutations take mu for the whole mutate+recompute cycle, so two
// concurrent writes can never interleave their recomputes and persist
// stale balances.
type daybookService struct {
	BaseService
	daybookRepo portsrepo.DayBookRepositoryFacade
	mu          sync.Mutex
}

// NewDayBookService creates a new day book service
func NewDayBookService(repo portsrepo.DayBookRepositoryFacade) *daybookService {
	return &daybookService{
		daybookRepo: repo,
	}
}

func (s *daybookService) CreateEntry(ctx context.Context, req dto.CreateDayBookEntryRequest, creatorUserID string) (*domain.DayBookEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	entry := domain.DayBookEntry{
		EntryID:     uuid.NewString(),
		Date:        req.Date.UTC(),
		Description: req.Description,
		Purpose:     req.Purpose,
		Debit:       req.Debit,
		Credit:      req.Credit,
		Balance:     decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.daybookRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "failed to save day book entry")
		return nil, err
	}
	if err := s.recomputeLocked(ctx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "day book entry created", slog.String("entry_id", entry.EntryID))
	return &entry, nil
}

func (s *daybookService) ListEntries(ctx context.Context) ([]domain.DayBookEntry, error) {
	return s.daybookRepo.ListEntries(ctx)
}

func (s *daybookService) UpdateEntry(ctx context.Context, entryID string, req dto.CreateDayBookEntryRequest, updaterUserID string) (*domain.DayBookEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.daybookRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	entry.Date = req.Date.UTC()
	entry.Description = req.Description
	entry.Purpose = req.Purpose
	entry.Debit = req.Debit
	entry.Credit = req.Credit
	entry.LastUpdatedAt = time.Now().UTC()
	entry.LastUpdatedBy = updaterUserID

	if err := s.daybookRepo.UpdateEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "failed to update day book entry", slog.String("entry_id", entryID))
		return nil, err
	}
	if err := s.recomputeLocked(ctx); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *daybookService) DeleteEntry(ctx context.Context, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.daybookRepo.DeleteEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "failed to delete day book entry", slog.String("entry_id", entryID))
		return err
	}
	if err := s.recomputeLocked(ctx); err != nil {
		return err
	}
	s.LogInfo(ctx, "day book entry deleted", slog.String("entry_id", entryID))
	return nil
}

// RecomputeAll rewrites every entry's balance as the prefix sum of
// (credit - debit) in date order. Idempotent: running it twice in a row
// writes the same balances.
func (s *daybookService) RecomputeAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recomputeLocked(ctx)
}

func (s *daybookService) recomputeLocked(ctx context.Context) error {
	entries, err := s.daybookRepo.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list day book entries for recompute")
		return err
	}

	// The repository already orders by date; the sort is kept so the
	// invariant does not depend on it.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	balances := make(map[string]decimal.Decimal, len(entries))
	running := decimal.Zero
	for _, entry := range entries {
		running = running.Add(entry.Credit).Sub(entry.Debit)
		balances[entry.EntryID] = running
	}

	if len(balances) == 0 {
		return nil
	}
	if err := s.daybookRepo.UpdateBalances(ctx, balances); err != nil {
		s.LogError(ctx, err, "failed to persist recomputed day book balances")
		return err
	}
	s.LogDebug(ctx, "day book balances recomputed", slog.Int("entries", len(entries)))
	return nil
}
