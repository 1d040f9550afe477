package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/apperrors"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	portsrepo "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/repositories"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/dto"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/utils"
)

// journalEntryService implements the JournalEntrySvcFacade interface
type journalEntryService struct {
	BaseService
	journalEntryRepo portsrepo.JournalEntryRepositoryFacade
}

// NewJournalEntryService creates a new journal entry service
func NewJournalEntryService(repo portsrepo.JournalEntryRepositoryFacade) *journalEntryService {
	return &journalEntryService{
		journalEntryRepo: repo,
	}
}

func (s *journalEntryService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	if req.Amount.IsZero() {
		return nil, apperrors.NewAppError(400, "journal entry amount must be non-zero", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	entryDate := now
	if req.EntryDate != nil {
		entryDate = req.EntryDate.UTC()
	}

	seq, err := s.journalEntryRepo.CountByNumberPrefix(ctx, utils.DocumentNumberPrefix("JE", entryDate))
	if err != nil {
		s.LogError(ctx, err, "failed to count journal entries for number sequencing")
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = "posted"
	}

	entry := domain.JournalEntry{
		EntryID:         uuid.NewString(),
		EntryNumber:     utils.DocumentNumber("JE", entryDate, seq+1),
		EntryDate:       entryDate,
		EntryType:       req.EntryType,
		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		Description:     req.Description,
		Amount:          req.Amount,
		ReferenceType:   req.ReferenceType,
		ReferenceID:     req.ReferenceID,
		ReferenceNumber: req.ReferenceNumber,
		Status:          status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.journalEntryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "failed to save journal entry", slog.String("entry_number", entry.EntryNumber))
		return nil, err
	}

	s.LogInfo(ctx, "journal entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("entry_type", string(entry.EntryType)),
		slog.String("amount", entry.Amount.String()))
	return &entry, nil
}

func (s *journalEntryService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	return s.journalEntryRepo.FindEntryByID(ctx, entryID)
}

func (s *journalEntryService) ListEntries(ctx context.Context, customerID string) ([]domain.JournalEntry, error) {
	if customerID != "" {
		return s.journalEntryRepo.FindEntriesByCustomer(ctx, customerID)
	}
	return s.journalEntryRepo.ListEntries(ctx)
}

func (s *journalEntryService) DeleteEntry(ctx context.Context, entryID string) error {
	if err := s.journalEntryRepo.DeleteEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "failed to delete journal entry", slog.String("entry_id", entryID))
		return err
	}
	s.LogInfo(ctx, "journal entry deleted", slog.String("entry_id", entryID))
	return nil
}
