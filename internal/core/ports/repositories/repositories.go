package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CustomerRepo     CustomerRepositoryFacade
	InvoiceRepo      InvoiceRepositoryFacade
	CreditNoteRepo   CreditNoteRepositoryFacade
	PaymentRepo      PaymentRepositoryFacade
	JournalEntryRepo JournalEntryRepositoryFacade
	DayBookRepo      DayBookRepositoryFacade
	UserRepo         UserRepositoryFacade
}
