package application

import (
	"context"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"renderkit/pkg/renderutils"
)

// nullPolicy is what a renderer does with a value absent from the store.
type nullPolicy int

const (
	// nullPassThrough renders a null value as null.
	nullPassThrough nullPolicy = iota
	// nullAsEmpty runs the routine on "" instead.
	nullAsEmpty
)

// renderCall holds the inputs of a single render.
type renderCall struct {
	ctx      context.Context
	value    string
	props    renderutils.Properties
	locale   language.Tag
	location *time.Location
	now      time.Time
}

// renderer adapts one routine to the render call. The output of a final
// renderer is already escaped and skips the output encoder.
type renderer struct {
	null  nullPolicy
	final bool
	fn    func(s *RenderService, c *renderCall) string
}

func builtinRenderers() map[string]renderer {
	return map[string]renderer{
		// text
		"abbreviate": {fn: func(_ *RenderService, c *renderCall) string {
			return renderutils.Abbreviate(c.value,
				c.props.Int("max", renderutils.DefaultAbbreviateMax),
				c.props.String("mark", renderutils.DefaultAbbreviateMark))
		}},
		"capitalize": {fn: func(_ *RenderService, c *renderCall) string {
			return renderutils.Capitalize(c.value)
		}},
		"capitalizeWords": {fn: func(_ *RenderService, c *renderCall) string {
			return renderutils.CapitalizeWords(c.value)
		}},
		"lowercase": {fn: func(_ *RenderService, c *renderCall) string {
			return renderutils.Lowercase(c.value, c.locale)
		}},
		"uppercase": {fn: func(_ *RenderService, c *renderCall) string {
			return renderutils.Uppercase(c.value, c.locale)
		}},
		"swapCase": {fn: func(_ *RenderService, c *renderCall) string {
			return renderutils.SwapCase(c.value)
		}},
		"rot13": {fn: func(_ *RenderService, c *renderCall) string {
			return renderutils.Rot13(c.value)
		}},
		"trim": {fn: func(_ *RenderService, c *renderCall) string {
			return renderutils.Trim(c.value)
		}},

		// encoders
		"encode": {final: true, fn: func(_ *RenderService, c *renderCall) string {
			return renderutils.Encode(c.value, c.props)
		}},
		"htmlEntities": {final: true, fn: func(_ *RenderService, c *renderCall) string {
			return renderutils.HTMLEntities(c.value)
		}},
		"encodeJs": {final: true, fn: func(_ *RenderService, c *renderCall) string {
			return renderutils.EncodeJS(c.value)
		}},
		"quotedPrintable": {final: true, fn: func(_ *RenderService, c *renderCall) string {
			return renderutils.QuotedPrintable(c.value)
		}},

		// date and time
		"dateIso": {null: nullAsEmpty, fn: func(_ *RenderService, c *renderCall) string {
			return renderutils.DateISO(c.now.In(c.location))
		}},
		"dateTimeIso": {null: nullAsEmpty, fn: func(_ *RenderService, c *renderCall) string {
			return renderutils.DateTimeISO(c.now.In(c.location))
		}},
		"timeIso": {null: nullAsEmpty, fn: func(_ *RenderService, c *renderCall) string {
			return renderutils.TimeISO(c.now.In(c.location))
		}},
		"yearIso": {null: nullAsEmpty, fn: func(_ *RenderService, c *renderCall) string {
			return renderutils.YearISO(c.now.In(c.location))
		}},
		"rfc2822": {null: nullAsEmpty, fn: func(s *RenderService, c *renderCall) string {
			return renderutils.RFC2822(c.now.In(c.location), s.localizer.CalendarNames(c.locale.String()))
		}},
		"swatchTime": {null: nullAsEmpty, fn: func(_ *RenderService, c *renderCall) string {
			return renderutils.SwatchBeat(c.now)
		}},
		"uptime": {null: nullAsEmpty, fn: func(s *RenderService, c *renderCall) string {
			labels := s.localizer.UptimeLabels(c.locale.String()).Override(c.props)
			return renderutils.Uptime(s.uptimeMillis(c), labels)
		}},

		// masking and validation
		"mask": {fn: func(_ *RenderService, c *renderCall) string {
			return renderutils.MaskWith(c.value, c.props)
		}},
		"creditCard": {fn: func(_ *RenderService, c *renderCall) string {
			return renderutils.FormatCreditCard(c.value)
		}},
		"validateCreditCard": {null: nullAsEmpty, fn: func(_ *RenderService, c *renderCall) string {
			return strconv.FormatBool(renderutils.ValidateCreditCard(c.value))
		}},
		"normalize": {null: nullAsEmpty, fn: func(_ *RenderService, c *renderCall) string {
			return renderutils.Normalize(c.value)
		}},

		// network
		"qrCode": {final: true, fn: func(s *RenderService, c *renderCall) string {
			return s.fetcher.QRCode(c.ctx, c.value, c.props.String("size", renderutils.DefaultQRCodeSize))
		}},
		"shortUrl": {fn: func(s *RenderService, c *renderCall) string {
			return s.fetcher.ShortenURL(c.ctx, c.value)
		}},
	}
}

// uptimeMillis returns the value of the call as milliseconds, or the time
// elapsed since the service started when the value is not an integer.
func (s *RenderService) uptimeMillis(c *renderCall) int64 {
	if ms, err := strconv.ParseInt(strings.TrimSpace(c.value), 10, 64); err == nil {
		return ms
	}
	return c.now.Sub(s.startedAt).Milliseconds()
}
