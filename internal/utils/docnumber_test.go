package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/utils"
)

func TestDocumentNumberPrefix(t *testing.T) {
	date := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "INV-20240315-", utils.DocumentNumberPrefix("INV", date))
	assert.Equal(t, "CN-20240315-", utils.DocumentNumberPrefix("CN", date))
	assert.Equal(t, "PAY-R-20240315-", utils.DocumentNumberPrefix("PAY-R", date))
}

func TestDocumentNumber(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "INV-20240315-0001", utils.DocumentNumber("INV", date, 1))
	assert.Equal(t, "JE-20240315-0042", utils.DocumentNumber("JE", date, 42))
	// The counter keeps going past four digits rather than wrapping
	assert.Equal(t, "INV-20240315-10000", utils.DocumentNumber("INV", date, 10000))
}
