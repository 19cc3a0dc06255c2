package renderutils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Default abbreviation settings used when the mark and max keys are absent.
const (
	DefaultAbbreviateMark = "..."
	DefaultAbbreviateMax  = -1
)

// Uppercase maps s to upper case with the rules of the given language.
func Uppercase(s string, tag language.Tag) string {
	if s == "" {
		return s
	}
	return cases.Upper(tag).String(s)
}

// Lowercase maps s to lower case with the rules of the given language.
func Lowercase(s string, tag language.Tag) string {
	if s == "" {
		return s
	}
	return cases.Lower(tag).String(s)
}

// Capitalize returns s with its first rune in title case. The rest of s is
// left unchanged.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	t := unicode.ToTitle(r)
	if t == r {
		return s
	}
	b := strings.Builder{}
	b.Grow(len(s) + 2)
	b.WriteRune(t)
	b.WriteString(s[size:])
	return b.String()
}

// CapitalizeWords returns s with the first rune of each whitespace-delimited
// word in title case.
func CapitalizeWords(s string) string {
	prev := ' '
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(prev) {
			prev = r
			return unicode.ToTitle(r)
		}
		prev = r
		return r
	}, s)
}

// SwapCase returns s with upper and title case letters mapped to lower case
// and lower case letters mapped to upper case.
func SwapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r), unicode.IsTitle(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		}
		return r
	}, s)
}

// Rot13 rotates the ASCII letters of s by 13 places. Any other rune is left
// as is, so Rot13(Rot13(s)) == s.
func Rot13(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z':
			return 'a' + (r-'a'+13)%26
		case 'A' <= r && r <= 'Z':
			return 'A' + (r-'A'+13)%26
		}
		return r
	}, s)
}

// Abbreviate shortens s to at most max runes, ending it with mark when runes
// were cut. A negative max returns s unchanged. When max does not leave room
// for mark, the result is mark cut to max runes, so a zero max returns "".
func Abbreviate(s string, max int, mark string) string {
	if max < 0 {
		return s
	}
	n := utf8.RuneCountInString(s)
	if n <= max {
		return s
	}
	m := utf8.RuneCountInString(mark)
	if max <= m {
		return prefixRunes(mark, max)
	}
	return prefixRunes(s, max-m) + mark
}

// Trim returns s without leading and trailing white space.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// prefixRunes returns the first n runes of s.
func prefixRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for j := range s {
		if i == n {
			return s[:j]
		}
		i++
	}
	return s
}

// suffixRunes returns the last n runes of s.
func suffixRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := len(s)
	for ; n > 0 && i > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
	}
	return s[i:]
}
