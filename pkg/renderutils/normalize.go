package renderutils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// separators are the ASCII characters marking a word boundary in Normalize.
var separators = [128]bool{
	' ': true, '&': true, '(': true, ')': true, '-': true, '_': true,
	'=': true, '[': true, '{': true, ']': true, '}': true, '\\': true,
	'|': true, ';': true, ':': true, ',': true, '<': true, '.': true,
	'>': true, '/': true, '@': true,
}

// IsSeparator reports whether r marks a word boundary for Normalize.
func IsSeparator(r rune) bool {
	return r >= 0 && r < 128 && separators[r]
}

// Normalize turns s into a lower case ASCII slug such as
// "news-for-january-6-2023-paris". Accents are stripped through canonical
// decomposition, runs of separators become a single "-" and every other
// character is dropped. The slug never starts or ends with "-".
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = norm.NFD.String(s)
	b := strings.Builder{}
	b.Grow(len(s))
	dash := false
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z', '0' <= r && r <= '9':
		case 'A' <= r && r <= 'Z':
			r += 'a' - 'A'
		case IsSeparator(r):
			dash = b.Len() > 0
			continue
		default:
			continue
		}
		if dash {
			b.WriteByte('-')
			dash = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
