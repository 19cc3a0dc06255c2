package output

import (
	"context"

	"renderkit/internal/domain/entities"
	"renderkit/pkg/renderutils"
)

// ValueStore is the value store of the host template. Values are looked up
// by id and differentiator first, then attributes by id.
type ValueStore interface {
	Value(id, differentiator string) (string, bool)
	Attribute(id string) (string, bool)
}

// Fetcher performs the network-backed formatting.
type Fetcher interface {
	FetchURL(ctx context.Context, url, def string) string
	QRCode(ctx context.Context, data, size string) string
	ShortenURL(ctx context.Context, url string) string
}

// Localizer provides the locale-dependent tables of the formatters.
type Localizer interface {
	CalendarNames(locale string) renderutils.CalendarNames
	UptimeLabels(locale string) renderutils.UptimeLabels
}

// OutputEncoder escapes a rendered value for the content type of the
// template it is written to.
type OutputEncoder interface {
	Encode(ct entities.ContentType, s string) string
}
