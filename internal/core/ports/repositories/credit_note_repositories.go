package repositories

import (
	"context"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
)

// CreditNoteReader defines read operations for credit note data
type CreditNoteReader interface {
	FindCreditNoteByID(ctx context.Context, creditNoteID string) (*domain.CreditNote, error)

	// FindCreditNotesByCustomer retrieves all credit notes for a customer
	// sorted ascending by credit note date.
	FindCreditNotesByCustomer(ctx context.Context, customerID string) ([]domain.CreditNote, error)

	ListCreditNotes(ctx context.Context) ([]domain.CreditNote, error)

	CountByNumberPrefix(ctx context.Context, prefix string) (int, error)
}

// CreditNoteWriter defines write operations for credit note data
type CreditNoteWriter interface {
	SaveCreditNote(ctx context.Context, creditNote domain.CreditNote) error
	DeleteCreditNote(ctx context.Context, creditNoteID string) error
}

// CreditNoteRepositoryFacade combines all credit-note repository interfaces
type CreditNoteRepositoryFacade interface {
	CreditNoteReader
	CreditNoteWriter
}
