package utils

import (
	"fmt"
	"time"
)

// DocumentNumberPrefix returns the day-scoped prefix for a document number,
// e.g. "INV-20250830-". Sequencing restarts each day within this prefix.
func DocumentNumberPrefix(kind string, date time.Time) string {
	return fmt.Sprintf("%s-%s-", kind, date.Format("20060102"))
}

// DocumentNumber builds a full document number like "INV-20250830-0001".
// seq is 1-based.
func DocumentNumber(kind string, date time.Time, seq int) string {
	return fmt.Sprintf("%s%04d", DocumentNumberPrefix(kind, date), seq)
}
