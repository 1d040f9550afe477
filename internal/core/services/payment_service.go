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
)

// paymentService implements the PaymentSvcFacade interface
type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, invoiceRepo portsrepo.InvoiceRepositoryFacade) *paymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
	}
}

func numberKindFor(direction domain.PaymentDirection) string {
	if direction == domain.PaymentPay {
		return "PAY-P"
	}
	return "PAY-R"
}

func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	if req.PaymentAmount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewAppError(400, "payment amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	paymentDate := now
	if req.PaymentDate != nil {
		paymentDate = req.PaymentDate.UTC()
	}

	allocations := make([]domain.PaymentAllocation, 0, len(req.Allocations))
	allocated := decimal.Zero
	for _, a := range req.Allocations {
		if a.AllocatedAmount.LessThanOrEqual(decimal.Zero) {
			return nil, apperrors.NewAppError(400, "allocation amounts must be positive", apperrors.ErrValidation)
		}
		allocated = allocated.Add(a.AllocatedAmount)
		allocations = append(allocations, domain.PaymentAllocation{
			InvoiceID:       a.InvoiceID,
			InvoiceNumber:   a.InvoiceNumber,
			InvoiceType:     a.InvoiceType,
			AllocatedAmount: a.AllocatedAmount,
		})
	}
	if allocated.GreaterThan(req.PaymentAmount) {
		return nil, apperrors.NewAppError(400, "allocations exceed payment amount", apperrors.ErrValidation)
	}

	kind := numberKindFor(req.PaymentType)
	seq, err := s.paymentRepo.CountByNumberPrefix(ctx, utils.DocumentNumberPrefix(kind, paymentDate))
	if err != nil {
		s.LogError(ctx, err, "failed to count payments for number sequencing")
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = "posted"
	}

	payment := domain.Payment{
		PaymentID:         uuid.NewString(),
		PaymentNumber:     utils.DocumentNumber(kind, paymentDate, seq+1),
		PaymentDate:       paymentDate,
		PaymentType:       req.PaymentType,
		PartnerID:         req.PartnerID,
		PartnerName:       req.PartnerName,
		PartnerType:       req.PartnerType,
		PaymentMethod:     req.PaymentMethod,
		PaymentAmount:     req.PaymentAmount,
		BankReference:     req.BankReference,
		ChequeNumber:      req.ChequeNumber,
		UPITransactionID:  req.UPITransactionID,
		Allocations:       allocations,
		UnallocatedAmount: req.PaymentAmount.Sub(allocated),
		Memo:              req.Memo,
		Status:            status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "failed to save payment", slog.String("payment_number", payment.PaymentNumber))
		return nil, err
	}

	// Refresh payment status on every allocated sales invoice. A failure
	// here is logged but does not undo the recorded payment.
	for _, alloc := range allocations {
		if alloc.InvoiceType != "sales_invoice" {
			continue
		}
		if err := s.refreshInvoicePaymentStatus(ctx, alloc.InvoiceID, creatorUserID); err != nil {
			s.LogError(ctx, err, "failed to refresh invoice payment status",
				slog.String("invoice_id", alloc.InvoiceID),
				slog.String("payment_id", payment.PaymentID))
		}
	}

	s.LogInfo(ctx, "payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("payment_number", payment.PaymentNumber),
		slog.String("amount", payment.PaymentAmount.String()))
	return &payment, nil
}

// refreshInvoicePaymentStatus recomputes an invoice's payment status from
// all allocations recorded against it across every payment.
func (s *paymentService) refreshInvoicePaymentStatus(ctx context.Context, invoiceID string, updaterUserID string) error {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return err
	}

	payments, err := s.paymentRepo.FindReceivedPaymentsByCustomer(ctx, invoice.CustomerID)
	if err != nil {
		return err
	}

	totalAllocated := decimal.Zero
	for _, p := range payments {
		for _, alloc := range p.Allocations {
			if alloc.InvoiceID == invoiceID {
				totalAllocated = totalAllocated.Add(alloc.AllocatedAmount)
			}
		}
	}

	status := domain.PaymentUnpaid
	switch {
	case totalAllocated.GreaterThanOrEqual(invoice.GrandTotal) && invoice.GrandTotal.IsPositive():
		status = domain.PaymentPaid
	case totalAllocated.IsPositive():
		status = domain.PaymentPartial
	}

	if status == invoice.PaymentStatus {
		return nil
	}
	return s.invoiceRepo.UpdatePaymentStatus(ctx, invoiceID, status, updaterUserID)
}

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

func (s *paymentService) ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.Payment, error) {
	filter := portsrepo.PaymentListFilter{
		PaymentType: domain.PaymentDirection(params.PaymentType),
		PartnerID:   params.PartnerID,
	}
	if params.StartDate != "" {
		t, err := time.Parse("2006-01-02", params.StartDate)
		if err != nil {
			return nil, apperrors.NewAppError(400, "invalid startDate, expected YYYY-MM-DD", apperrors.ErrValidation)
		}
		filter.StartDate = &t
	}
	if params.EndDate != "" {
		t, err := time.Parse("2006-01-02", params.EndDate)
		if err != nil {
			return nil, apperrors.NewAppError(400, "invalid endDate, expected YYYY-MM-DD", apperrors.ErrValidation)
		}
		// Include the whole end day.
		end := t.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &end
	}
	return s.paymentRepo.ListPayments(ctx, filter)
}
