package services

import (
	"context"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/dto"
)

// RecoverySvcFacade defines payment recovery operations built on top of
// the invoice data and the messaging notifier.
type RecoverySvcFacade interface {
	// Stats aggregates outstanding and overdue amounts across all
	// non-cancelled invoices, bucketed by age.
	Stats(ctx context.Context) (*dto.RecoveryStats, error)

	// SendReminder sends a WhatsApp payment reminder for one invoice.
	SendReminder(ctx context.Context, req dto.SendReminderRequest) (dto.NotifyResult, error)
}
