package services

import (
	"context"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/dto"
)

// JournalEntrySvcFacade defines operations for manual journal entries
type JournalEntrySvcFacade interface {
	CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error)
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, customerID string) ([]domain.JournalEntry, error)
	DeleteEntry(ctx context.Context, entryID string) error
}
