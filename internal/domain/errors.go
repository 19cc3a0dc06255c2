package domain

import "errors"

// domainError is a sentinel error carrying a stable code that adapters map
// to user-facing messages.
type domainError struct {
	code string
	msg  string
}

func (e *domainError) Error() string { return e.msg }

// Code returns the stable code of the error.
func (e *domainError) Code() string { return e.code }

// Domain errors.
var (
	ErrUnknownRenderer = &domainError{code: "unknown_renderer", msg: "renderer inconnu"}
	ErrEmptyRenderer   = &domainError{code: "empty_renderer", msg: "aucun renderer indiqué"}
	ErrTemplate        = &domainError{code: "template_failed", msg: "le rendu du template a échoué"}
)

// Code returns the code of the domain error wrapped by err, or "" if err
// does not wrap a domain error.
func Code(err error) string {
	var de *domainError
	if errors.As(err, &de) {
		return de.code
	}
	return ""
}
