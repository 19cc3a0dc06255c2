package encoder

import (
	"renderkit/internal/domain/entities"
	"renderkit/internal/ports/output"
	"renderkit/pkg/renderutils"
)

var _ output.OutputEncoder = ContentEncoder{}

// ContentEncoder escapes rendered values for the content type of the
// template they are written to. Plain text is written as is.
type ContentEncoder struct{}

func (ContentEncoder) Encode(ct entities.ContentType, s string) string {
	switch ct {
	case entities.ContentHTML:
		return renderutils.EncodeHTML(s)
	case entities.ContentXML:
		return renderutils.EncodeXML(s)
	case entities.ContentJSON:
		return renderutils.EncodeJSON(s)
	case entities.ContentJS:
		return renderutils.EncodeJS(s)
	default:
		return s
	}
}
