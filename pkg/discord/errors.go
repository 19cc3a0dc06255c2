package discord

import (
	"renderkit/internal/domain"
	"renderkit/internal/ports/output"
)

const genericErrorKey = "error_generic"

// TranslateDomainError maps a domain error code to a user-facing message in
// locale. Codes without a message get the generic one.
func TranslateDomainError(tr output.T, locale, code string) string {
	if code != "" {
		key := "error_" + code
		if msg := tr.T(locale, key, nil); msg != key {
			return msg
		}
	}
	return tr.T(locale, genericErrorKey, nil)
}

// DomainErrorMessage is a convenience helper that extracts the domain error code
// and immediately resolves it to a user-facing message.
func DomainErrorMessage(tr output.T, locale string, err error) string {
	if err == nil {
		return ""
	}
	return TranslateDomainError(tr, locale, domain.Code(err))
}
