package services

import (
	portsrepo "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/repositories"
	portssvc "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/services"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, notifier portssvc.MessagingNotifier) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo)
	container.CreditNote = NewCreditNoteService(repos.CreditNoteRepo, repos.InvoiceRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.InvoiceRepo)
	container.JournalEntry = NewJournalEntryService(repos.JournalEntryRepo)

	// The ledger service reads every source collection; it owns no data.
	container.Ledger = NewLedgerService(
		repos.CustomerRepo,
		repos.InvoiceRepo,
		repos.CreditNoteRepo,
		repos.PaymentRepo,
		repos.JournalEntryRepo,
	)

	container.DayBook = NewDayBookService(repos.DayBookRepo)
	container.Notifier = notifier
	container.Recovery = NewRecoveryService(repos.InvoiceRepo, repos.PaymentRepo, notifier)
	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(cfg, repos.UserRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CustomerSvcFacade     = (*customerService)(nil)
	_ portssvc.InvoiceSvcFacade      = (*invoiceService)(nil)
	_ portssvc.CreditNoteSvcFacade   = (*creditNoteService)(nil)
	_ portssvc.PaymentSvcFacade      = (*paymentService)(nil)
	_ portssvc.JournalEntrySvcFacade = (*journalEntryService)(nil)
	_ portssvc.LedgerSvcFacade       = (*ledgerService)(nil)
	_ portssvc.DayBookSvcFacade      = (*daybookService)(nil)
	_ portssvc.RecoverySvcFacade     = (*recoveryService)(nil)
	_ portssvc.UserSvcFacade         = (*userService)(nil)
	_ portssvc.AuthSvcFacade         = (*authService)(nil)
)
