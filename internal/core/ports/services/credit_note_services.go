package services

import (
	"context"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/dto"
)

// CreditNoteSvcFacade defines operations for managing credit notes
type CreditNoteSvcFacade interface {
	CreateCreditNote(ctx context.Context, req dto.CreateCreditNoteRequest, creatorUserID string) (*domain.CreditNote, error)
	GetCreditNoteByID(ctx context.Context, creditNoteID string) (*domain.CreditNote, error)
	ListCreditNotes(ctx context.Context) ([]domain.CreditNote, error)
	DeleteCreditNote(ctx context.Context, creditNoteID string) error
}
