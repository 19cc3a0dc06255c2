package renderutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreditCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"4505 4672 3366 6430", true},
		{"4342256562440179", true},
		{"4342-2565-6244-0179", true},
		{"0123456789012345", false},
		{"000000000000001", false},
		{"0000000", false},
		{"00000000", true},
		{"4342 2565 6244 0179 0", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ValidateCreditCard(tt.in))
		})
	}
}

func TestFormatCreditCard(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0179", FormatCreditCard("4342 2565 6244 0179"))
	assert.Equal(t, "6430", FormatCreditCard("4505-4672-3366-6430"))
	assert.Equal(t, "", FormatCreditCard("000000000000001"))
	assert.Equal(t, "", FormatCreditCard("0123456789012345"))
	assert.Equal(t, "", FormatCreditCard("card: n/a"))

	t.Run("length is checked on digits only", func(t *testing.T) {
		t.Parallel()
		// 21 characters with separators, 16 digits.
		assert.False(t, ValidateCreditCard("4342 - 2565 6244 0179"))
		assert.Equal(t, "0179", FormatCreditCard("4342 - 2565 6244 0179"))
	})

	t.Run("blank passes through", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", FormatCreditCard(""))
		assert.Equal(t, "   ", FormatCreditCard("   "))
	})
}
