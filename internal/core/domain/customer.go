package domain

// Customer is a sales-side business partner whose ledger the reporting
// module derives from invoices, credit notes, payments and journal entries.
type Customer struct {
	CustomerID string `json:"customerID"` // Primary Key (UUID)
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	GSTNumber  string `json:"gstNumber"`
	Email      string `json:"email"`
	AuditFields
}
