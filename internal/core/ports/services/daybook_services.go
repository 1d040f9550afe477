package services

import (
	"context"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/dto"
)

// DayBookSvcFacade defines operations for the manually maintained day book.
// Every mutation triggers a serialized full recompute of all balances.
type DayBookSvcFacade interface {
	CreateEntry(ctx context.Context, req dto.CreateDayBookEntryRequest, creatorUserID string) (*domain.DayBookEntry, error)
	ListEntries(ctx context.Context) ([]domain.DayBookEntry, error)
	UpdateEntry(ctx context.Context, entryID string, req dto.CreateDayBookEntryRequest, updaterUserID string) (*domain.DayBookEntry, error)
	DeleteEntry(ctx context.Context, entryID string) error

	// RecomputeAll rewrites every entry's balance as the prefix sum of
	// (credit - debit) in date order. Idempotent.
	RecomputeAll(ctx context.Context) error
}
