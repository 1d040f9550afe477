package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/apperrors"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	portsrepo "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/repositories"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/dto"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/utils"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/utils/accounting"
)

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(repo portsrepo.InvoiceRepositoryFacade) *invoiceService {
	return &invoiceService{
		invoiceRepo: repo,
	}
}

// isInterstateGST reports whether a customer GSTIN belongs to a different
// state than the seller. The first two digits of a GSTIN are the state code;
// the seller is registered in Telangana (36).
func isInterstateGST(customerGST string) bool {
	gst := strings.TrimSpace(customerGST)
	if len(gst) < 2 {
		return false
	}
	return gst[:2] != "36"
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	if len(req.Items) == 0 {
		return nil, apperrors.NewAppError(400, "invoice requires at least one item", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	invoiceDate := now
	if req.InvoiceDate != nil {
		invoiceDate = req.InvoiceDate.UTC()
	}

	seq, err := s.invoiceRepo.CountByNumberPrefix(ctx, utils.DocumentNumberPrefix("INV", invoiceDate))
	if err != nil {
		s.LogError(ctx, err, "failed to count invoices for number sequencing")
		return nil, err
	}

	items := dto.ToLineItems(req.Items)
	interstate := isInterstateGST(req.CustomerGST)
	totals := accounting.ComputeDocumentTotals(items, req.OverallDiscountType, req.OverallDiscountValue, interstate)

	status := domain.InvoiceStatus(req.InvoiceStatus)
	if status == "" {
		status = domain.InvoiceConfirmed
	}
	paymentStatus := domain.PaymentStatus(req.PaymentStatus)
	if paymentStatus == "" {
		paymentStatus = domain.PaymentUnpaid
	}

	invoice := domain.Invoice{
		InvoiceID:             uuid.NewString(),
		InvoiceNumber:         utils.DocumentNumber("INV", invoiceDate, seq+1),
		InvoiceDate:           invoiceDate,
		InvoiceStatus:         status,
		CustomerID:            req.CustomerID,
		CustomerName:          req.CustomerName,
		CustomerAddress:       req.CustomerAddress,
		CustomerPhone:         req.CustomerPhone,
		CustomerGST:           req.CustomerGST,
		BuyerOrderNo:          req.BuyerOrderNo,
		VehicleNo:             req.VehicleNo,
		PaymentTerms:          req.PaymentTerms,
		Items:                 items,
		Subtotal:              totals.Subtotal,
		TotalDiscount:         totals.TotalItemDiscount,
		OverallDiscountType:   req.OverallDiscountType,
		OverallDiscountValue:  req.OverallDiscountValue,
		OverallDiscountAmount: totals.OverallDiscountAmount,
		TaxableAmount:         totals.TaxableAmount,
		IsInterstate:          interstate,
		CGSTAmount:            totals.CGSTAmount,
		SGSTAmount:            totals.SGSTAmount,
		IGSTAmount:            totals.IGSTAmount,
		TotalGST:              totals.TotalGST,
		GrandTotal:            totals.GrandTotal,
		PaymentStatus:         paymentStatus,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "failed to save invoice", slog.String("invoice_number", invoice.InvoiceNumber))
		return nil, err
	}

	s.LogInfo(ctx, "invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.String("grand_total", invoice.GrandTotal.String()))
	return &invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

func (s *invoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	invoices, nextToken, err := s.invoiceRepo.ListInvoices(ctx, limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return &dto.ListInvoicesResponse{Invoices: invoices, NextToken: nextToken}, nil
}

func (s *invoiceService) UpdatePaymentStatus(ctx context.Context, invoiceID string, status domain.PaymentStatus, updaterUserID string) error {
	if err := s.invoiceRepo.UpdatePaymentStatus(ctx, invoiceID, status, updaterUserID); err != nil {
		s.LogError(ctx, err, "failed to update payment status", slog.String("invoice_id", invoiceID))
		return err
	}
	return nil
}

func (s *invoiceService) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updaterUserID string) error {
	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, status, updaterUserID); err != nil {
		s.LogError(ctx, err, "failed to update invoice status", slog.String("invoice_id", invoiceID))
		return err
	}
	s.LogInfo(ctx, "invoice status updated",
		slog.String("invoice_id", invoiceID),
		slog.String("status", string(status)))
	return nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		s.LogError(ctx, err, "failed to delete invoice", slog.String("invoice_id", invoiceID))
		return err
	}
	s.LogInfo(ctx, "invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}
