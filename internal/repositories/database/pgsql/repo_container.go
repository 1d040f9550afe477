package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CustomerRepo:     newPgxCustomerRepository(dbPool),
		InvoiceRepo:      newPgxInvoiceRepository(dbPool),
		CreditNoteRepo:   newPgxCreditNoteRepository(dbPool),
		PaymentRepo:      newPgxPaymentRepository(dbPool),
		JournalEntryRepo: newPgxJournalEntryRepository(dbPool),
		DayBookRepo:      newPgxDayBookRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
	}
}
