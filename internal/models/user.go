package models

import (
	"database/sql"
	"time"
)

// User maps to the users table.
type User struct {
	UserID       string         `db:"user_id"`
	Username     string         `db:"username"`
	PasswordHash string         `db:"password_hash"`
	Name         string         `db:"name"`
	AuthProvider string         `db:"auth_provider"`
	ProviderID   sql.NullString `db:"provider_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
