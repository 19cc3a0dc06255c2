package renderutils

import (
	"strings"
	"unicode/utf8"
)

// Length bounds of a credit card number.
const (
	minCardLength = 8
	maxCardLength = 19
)

// ValidateCreditCard reports whether s is a credit card number passing the
// Luhn checksum. The length of s, separators included, must be between 8
// and 19. Only ASCII digits take part in the checksum.
func ValidateCreditCard(s string) bool {
	if n := utf8.RuneCountInString(s); n < minCardLength || n > maxCardLength {
		return false
	}
	sum := 0
	double := false
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c < '0' || c > '9' {
			continue
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// FormatCreditCard returns the last four digits of the credit card number s,
// or "" if s is not a valid number. Characters other than ASCII digits are
// removed before validation. A blank s is returned unchanged.
func FormatCreditCard(s string) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	digits := onlyDigits(s)
	if !ValidateCreditCard(digits) {
		return ""
	}
	return digits[len(digits)-4:]
}

func onlyDigits(s string) string {
	b := strings.Builder{}
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; '0' <= c && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
