package utils_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/utils"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"999", "999.00"},
		{"1000", "1,000.00"},
		{"100000", "1,00,000.00"},
		{"1234567.891", "12,34,567.89"},
		{"123456789", "12,34,56,789.00"},
		{"-54321.5", "-54,321.50"},
	}
	for _, tc := range cases {
		got := utils.FormatINR(decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.want, got, "input %s", tc.in)
	}
}
