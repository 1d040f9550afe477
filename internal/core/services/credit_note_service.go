package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/apperrors"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	portsrepo "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/repositories"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/dto"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/utils"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/utils/accounting"
)

// creditNoteService implements the CreditNoteSvcFacade interface
type creditNoteService struct {
	BaseService
	creditNoteRepo portsrepo.CreditNoteRepositoryFacade
	invoiceRepo    portsrepo.InvoiceRepositoryFacade
}

// NewCreditNoteService creates a new credit note service
func NewCreditNoteService(creditNoteRepo portsrepo.CreditNoteRepositoryFacade, invoiceRepo portsrepo.InvoiceRepositoryFacade) *creditNoteService {
	return &creditNoteService{
		creditNoteRepo: creditNoteRepo,
		invoiceRepo:    invoiceRepo,
	}
}

func (s *creditNoteService) CreateCreditNote(ctx context.Context, req dto.CreateCreditNoteRequest, creatorUserID string) (*domain.CreditNote, error) {
	if len(req.Items) == 0 {
		return nil, apperrors.NewAppError(400, "credit note requires at least one item", apperrors.ErrValidation)
	}

	// Credit notes always reference an existing invoice and inherit its
	// interstate treatment.
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, req.InvoiceID)
	if err != nil {
		s.LogError(ctx, err, "failed to load invoice for credit note", slog.String("invoice_id", req.InvoiceID))
		return nil, err
	}

	now := time.Now().UTC()
	noteDate := now
	if req.CreditNoteDate != nil {
		noteDate = req.CreditNoteDate.UTC()
	}

	seq, err := s.creditNoteRepo.CountByNumberPrefix(ctx, utils.DocumentNumberPrefix("CN", noteDate))
	if err != nil {
		s.LogError(ctx, err, "failed to count credit notes for number sequencing")
		return nil, err
	}

	items := dto.ToLineItems(req.Items)
	totals := accounting.ComputeDocumentTotals(items, "", decimal.Zero, invoice.IsInterstate)

	creditNote := domain.CreditNote{
		CreditNoteID:     uuid.NewString(),
		CreditNoteNumber: utils.DocumentNumber("CN", noteDate, seq+1),
		CreditNoteDate:   noteDate,
		InvoiceID:        req.InvoiceID,
		InvoiceNumber:    req.InvoiceNumber,
		CustomerID:       req.CustomerID,
		CustomerName:     req.CustomerName,
		Reason:           req.Reason,
		Items:            items,
		Subtotal:         totals.Subtotal,
		TotalDiscount:    totals.TotalItemDiscount,
		TaxableAmount:    totals.TaxableAmount,
		IsInterstate:     invoice.IsInterstate,
		CGSTAmount:       totals.CGSTAmount,
		SGSTAmount:       totals.SGSTAmount,
		IGSTAmount:       totals.IGSTAmount,
		TotalGST:         totals.TotalGST,
		CreditAmount:     totals.GrandTotal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.creditNoteRepo.SaveCreditNote(ctx, creditNote); err != nil {
		s.LogError(ctx, err, "failed to save credit note", slog.String("credit_note_number", creditNote.CreditNoteNumber))
		return nil, err
	}

	s.LogInfo(ctx, "credit note created",
		slog.String("credit_note_id", creditNote.CreditNoteID),
		slog.String("invoice_id", req.InvoiceID),
		slog.String("credit_amount", creditNote.CreditAmount.String()))
	return &creditNote, nil
}

func (s *creditNoteService) GetCreditNoteByID(ctx context.Context, creditNoteID string) (*domain.CreditNote, error) {
	return s.creditNoteRepo.FindCreditNoteByID(ctx, creditNoteID)
}

func (s *creditNoteService) ListCreditNotes(ctx context.Context) ([]domain.CreditNote, error) {
	return s.creditNoteRepo.ListCreditNotes(ctx)
}

func (s *creditNoteService) DeleteCreditNote(ctx context.Context, creditNoteID string) error {
	if err := s.creditNoteRepo.DeleteCreditNote(ctx, creditNoteID); err != nil {
		s.LogError(ctx, err, "failed to delete credit note", slog.String("credit_note_id", creditNoteID))
		return err
	}
	s.LogInfo(ctx, "credit note deleted", slog.String("credit_note_id", creditNoteID))
	return nil
}
