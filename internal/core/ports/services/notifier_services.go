package services

import (
	"context"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/dto"
)

// MessagingNotifier is the fire-and-forget contract to the WhatsApp
// microservice. Send failures are logged and reported in the result;
// they never fail the primary operation that triggered the send.
type MessagingNotifier interface {
	Status(ctx context.Context) (map[string]interface{}, error)
	QRCode(ctx context.Context) (map[string]interface{}, error)
	Disconnect(ctx context.Context) (map[string]interface{}, error)

	SendMessage(ctx context.Context, phoneNumber, message string) dto.NotifyResult
	SendDocument(ctx context.Context, phoneNumber, filePath, fileName, caption string) dto.NotifyResult
	SendInvoice(ctx context.Context, req dto.SendInvoiceRequest) dto.NotifyResult
}
