package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
)

// DayBookReader defines read operations for day book entries
type DayBookReader interface {
	FindEntryByID(ctx context.Context, entryID string) (*domain.DayBookEntry, error)

	// ListEntries retrieves every day book entry sorted ascending by date.
	// The recompute walk depends on this ordering being stable.
	ListEntries(ctx context.Context) ([]domain.DayBookEntry, error)
}

// DayBookWriter defines write operations for day book entries
type DayBookWriter interface {
	SaveEntry(ctx context.Context, entry domain.DayBookEntry) error
	UpdateEntry(ctx context.Context, entry domain.DayBookEntry) error
	DeleteEntry(ctx context.Context, entryID string) error

	// UpdateBalances writes recomputed running balances keyed by entry ID.
	UpdateBalances(ctx context.Context, balances map[string]decimal.Decimal) error
}

// DayBookRepositoryFacade combines all day-book repository interfaces
type DayBookRepositoryFacade interface {
	DayBookReader
	DayBookWriter
}
