package models

// Customer maps to the customers table.
type Customer struct {
	CustomerID string `db:"customer_id"`
	Name       string `db:"name"`
	Address    string `db:"address"`
	Phone      string `db:"phone"`
	GSTNumber  string `db:"gst_number"`
	Email      string `db:"email"`
	AuditFields
}
