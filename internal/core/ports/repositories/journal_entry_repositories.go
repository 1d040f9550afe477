package repositories

import (
	"context"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
)

// JournalEntryReader defines read operations for manual journal entries
type JournalEntryReader interface {
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindEntriesByCustomer retrieves all journal entries for a customer
	// sorted ascending by entry date.
	FindEntriesByCustomer(ctx context.Context, customerID string) ([]domain.JournalEntry, error)

	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)

	CountByNumberPrefix(ctx context.Context, prefix string) (int, error)
}

// JournalEntryWriter defines write operations for manual journal entries
type JournalEntryWriter interface {
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error
	DeleteEntry(ctx context.Context, entryID string) error
}

// JournalEntryRepositoryFacade combines all journal-entry repository interfaces
type JournalEntryRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}
