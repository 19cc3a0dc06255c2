package renderutils

import (
	"strings"
	"unicode/utf8"
)

// Default masking settings used when the mask, unmasked and fromStart keys
// are absent.
const (
	DefaultMask      = "*"
	DefaultUnmasked  = 4
	DefaultFromStart = false
)

// Mask hides the runes of s behind copies of mask, leaving unmasked runes
// visible at the start of s if fromStart is true, or at its end otherwise.
// Each hidden rune is replaced by a whole copy of mask. If unmasked is not
// positive or is not less than the length of s, every rune is hidden.
func Mask(s, mask string, unmasked int, fromStart bool) string {
	if s == "" {
		return s
	}
	n := utf8.RuneCountInString(s)
	if unmasked <= 0 || unmasked >= n {
		return strings.Repeat(mask, n)
	}
	hidden := strings.Repeat(mask, n-unmasked)
	if fromStart {
		return prefixRunes(s, unmasked) + hidden
	}
	return hidden + suffixRunes(s, unmasked)
}

// MaskWith is Mask configured by the mask, unmasked and fromStart keys of
// props.
func MaskWith(s string, props Properties) string {
	return Mask(s,
		props.String("mask", DefaultMask),
		props.Int("unmasked", DefaultUnmasked),
		props.Bool("fromStart", DefaultFromStart))
}
