package entities

import "strings"

// ContentType is the declared content type of the template a value is
// rendered into. It selects the output encoder.
type ContentType int

const (
	ContentText ContentType = iota
	ContentHTML
	ContentXML
	ContentJSON
	ContentJS
)

var contentTypeNames = [...]string{
	ContentText: "text",
	ContentHTML: "html",
	ContentXML:  "xml",
	ContentJSON: "json",
	ContentJS:   "js",
}

func (ct ContentType) String() string {
	if ct >= 0 && int(ct) < len(contentTypeNames) {
		return contentTypeNames[ct]
	}
	return "text"
}

// ParseContentType returns the content type with the given name. Unknown
// names are ContentText.
func ParseContentType(name string) ContentType {
	name = strings.ToLower(strings.TrimSpace(name))
	for ct, n := range contentTypeNames {
		if n == name {
			return ContentType(ct)
		}
	}
	return ContentText
}

// RenderRequest is a single render call made by a template.
type RenderRequest struct {
	// Renderer is the name of the routine to call, such as "mask".
	Renderer string
	// ID is the id of the value in the template store.
	ID string
	// Differentiator distinguishes several uses of the same value id.
	Differentiator string
	// Config is the properties block given as default value of the slot.
	Config string
	// ContentType is the content type of the template.
	ContentType ContentType
	// Locale and Zone override the service defaults when valid.
	Locale string
	Zone   string
}
