package repositories

import (
	"context"
	"time"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
)

// PaymentListFilter narrows payment listings. Nil/zero fields are ignored.
type PaymentListFilter struct {
	PaymentType domain.PaymentDirection
	PartnerID   string
	StartDate   *time.Time
	EndDate     *time.Time
}

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// FindReceivedPaymentsByCustomer retrieves payments of type "receive"
	// for a customer sorted ascending by payment date.
	FindReceivedPaymentsByCustomer(ctx context.Context, customerID string) ([]domain.Payment, error)

	// ListPayments retrieves payments matching the filter, newest first.
	ListPayments(ctx context.Context, filter PaymentListFilter) ([]domain.Payment, error)

	CountByNumberPrefix(ctx context.Context, prefix string) (int, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	SavePayment(ctx context.Context, payment domain.Payment) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
