package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
	portsrepo "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/repositories"
	portssvc "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/services"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/dto"
)

// Invoices unpaid for longer than this are treated as overdue.
const overdueAfter = 7 * 24 * time.Hour

// recoveryService implements the RecoverySvcFacade interface
type recoveryService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
	notifier    portssvc.MessagingNotifier
}

// NewRecoveryService creates a new recovery service
func NewRecoveryService(invoiceRepo portsrepo.InvoiceRepositoryFacade, paymentRepo portsrepo.PaymentRepositoryFacade, notifier portssvc.MessagingNotifier) *recoveryService {
	return &recoveryService{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		notifier:    notifier,
	}
}

func ageBucketKey(days int) string {
	switch {
	case days <= 7:
		return "0-7"
	case days <= 15:
		return "8-15"
	case days <= 30:
		return "16-30"
	case days <= 60:
		return "31-60"
	default:
		return "60+"
	}
}

// Stats walks every non-cancelled invoice that is not fully paid and
// aggregates the outstanding position by age.
func (s *recoveryService) Stats(ctx context.Context) (*dto.RecoveryStats, error) {
	stats := &dto.RecoveryStats{
		TotalOutstanding:    decimal.Zero,
		OverdueAmount:       decimal.Zero,
		PartiallyPaidAmount: decimal.Zero,
		CriticalOverdueAmt:  decimal.Zero,
		ByAge: map[string]dto.AgeBucket{
			"0-7":   {Amount: decimal.Zero},
			"8-15":  {Amount: decimal.Zero},
			"16-30": {Amount: decimal.Zero},
			"31-60": {Amount: decimal.Zero},
			"60+":   {Amount: decimal.Zero},
		},
	}

	now := time.Now().UTC()
	var nextToken *string
	for {
		invoices, token, err := s.invoiceRepo.ListInvoices(ctx, 100, nextToken)
		if err != nil {
			s.LogError(ctx, err, "failed to list invoices for recovery stats")
			return nil, err
		}

		for _, inv := range invoices {
			if inv.InvoiceStatus == domain.InvoiceCancelled || inv.PaymentStatus == domain.PaymentPaid {
				continue
			}

			outstanding := inv.GrandTotal
			if inv.PaymentStatus == domain.PaymentPartial {
				stats.PartiallyPaidCount++
				stats.PartiallyPaidAmount = stats.PartiallyPaidAmount.Add(outstanding)
			}
			stats.TotalOutstanding = stats.TotalOutstanding.Add(outstanding)

			age := now.Sub(inv.InvoiceDate)
			days := int(age.Hours() / 24)
			bucket := stats.ByAge[ageBucketKey(days)]
			bucket.Count++
			bucket.Amount = bucket.Amount.Add(outstanding)
			stats.ByAge[ageBucketKey(days)] = bucket

			if age > overdueAfter {
				stats.OverdueCount++
				stats.OverdueAmount = stats.OverdueAmount.Add(outstanding)
			}
			if days > 30 {
				stats.CriticalOverdueCount++
				stats.CriticalOverdueAmt = stats.CriticalOverdueAmt.Add(outstanding)
			}
		}

		if token == nil {
			break
		}
		nextToken = token
	}

	return stats, nil
}

// SendReminder sends a WhatsApp payment reminder for one invoice. The send
// itself is fire-and-forget: a delivery failure comes back in the result,
// not as an error.
func (s *recoveryService) SendReminder(ctx context.Context, req dto.SendReminderRequest) (dto.NotifyResult, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, req.InvoiceID)
	if err != nil {
		s.LogError(ctx, err, "failed to load invoice for reminder", slog.String("invoice_id", req.InvoiceID))
		return dto.NotifyResult{}, err
	}

	message := fmt.Sprintf(
		"Dear %s,\n\nThis is a gentle reminder that invoice %s dated %s for ₹%s is pending payment.\n\nKindly arrange the payment at the earliest.\n\nThank you!",
		invoice.CustomerName,
		invoice.InvoiceNumber,
		invoice.InvoiceDate.Format("02-01-2006"),
		invoice.GrandTotal.StringFixed(2),
	)

	result := s.notifier.SendMessage(ctx, req.PhoneNumber, message)
	if !result.Success {
		s.LogWarn(ctx, "payment reminder was not delivered",
			slog.String("invoice_id", req.InvoiceID),
			slog.String("detail", result.Detail))
	} else {
		s.LogInfo(ctx, "payment reminder sent",
			slog.String("invoice_id", req.InvoiceID),
			slog.String("invoice_number", invoice.InvoiceNumber))
	}
	return result, nil
}
