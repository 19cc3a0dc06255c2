package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"renderkit/internal/domain"
	"renderkit/internal/domain/entities"
	"renderkit/pkg/renderutils"
)

type fakeStore struct {
	values     map[string]string
	attributes map[string]string
}

func (s fakeStore) Value(id, differentiator string) (string, bool) {
	v, ok := s.values[id+"/"+differentiator]
	return v, ok
}

func (s fakeStore) Attribute(id string) (string, bool) {
	v, ok := s.attributes[id]
	return v, ok
}

type fakeFetcher struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeFetcher) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeFetcher) FetchURL(_ context.Context, url, def string) string {
	f.record("fetch " + url)
	return def
}

func (f *fakeFetcher) QRCode(_ context.Context, data, size string) string {
	f.record("qr " + data + " " + size)
	return "<svg>" + data + "</svg>"
}

func (f *fakeFetcher) ShortenURL(_ context.Context, url string) string {
	f.record("short " + url)
	return "https://is.gd/abc"
}

type tagEncoder struct{}

func (tagEncoder) Encode(ct entities.ContentType, s string) string {
	if ct == entities.ContentText {
		return s
	}
	return "[" + ct.String() + ":" + s + "]"
}

type frenchLocalizer struct{}

func (frenchLocalizer) CalendarNames(locale string) renderutils.CalendarNames {
	if locale != "fr" {
		return renderutils.EnglishCalendarNames
	}
	return renderutils.CalendarNames{
		Weekdays: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		Months:   [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	}
}

func (frenchLocalizer) UptimeLabels(locale string) renderutils.UptimeLabels {
	if locale != "fr" {
		return renderutils.DefaultUptimeLabels
	}
	l := renderutils.DefaultUptimeLabels
	l.Day, l.Days = " jour ", " jours "
	l.Hour, l.Hours = " heure ", " heures "
	return l
}

var fixedNow = time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, opts ...Option) (*RenderService, *fakeFetcher) {
	t.Helper()
	f := &fakeFetcher{}
	opts = append([]Option{
		WithLocation(time.UTC),
		WithClock(func() time.Time { return fixedNow }),
	}, opts...)
	return NewRenderService(f, frenchLocalizer{}, tagEncoder{}, opts...), f
}

var testStore = fakeStore{
	values: map[string]string{
		"card/":      "4505 4405 8765 6430",
		"name/":      "ada lovelace",
		"name/title": "Countess",
		"site/":      "https://example.com/a/long/path",
		"millis/":    "90061000",
	},
	attributes: map[string]string{
		"lang": "fr",
		"name": "from attribute",
	},
}

func render(t *testing.T, s *RenderService, req entities.RenderRequest) entities.Value {
	t.Helper()
	v, err := s.Render(context.Background(), testStore, req)
	require.NoError(t, err)
	return v
}

func TestRender_RendererErrors(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.Render(context.Background(), testStore, entities.RenderRequest{Renderer: "  ", ID: "name"})
	assert.ErrorIs(t, err, domain.ErrEmptyRenderer)

	_, err = s.Render(context.Background(), testStore, entities.RenderRequest{Renderer: "reverse", ID: "name"})
	assert.ErrorIs(t, err, domain.ErrUnknownRenderer)
	assert.Equal(t, "unknown_renderer", domain.Code(err))
	assert.Contains(t, err.Error(), "reverse")
}

func TestRender_CaseInsensitiveNames(t *testing.T) {
	s, _ := newTestService(t)

	for _, name := range []string{"capitalizeWords", "CAPITALIZEWORDS", "capitalizewords"} {
		v := render(t, s, entities.RenderRequest{Renderer: name, ID: "name"})
		assert.Equal(t, "Ada Lovelace", v.Text, name)
	}
}

func TestRender_ResolvesValuesThenAttributes(t *testing.T) {
	s, _ := newTestService(t)

	v := render(t, s, entities.RenderRequest{Renderer: "uppercase", ID: "name", Differentiator: "title"})
	assert.Equal(t, "COUNTESS", v.Text)

	v = render(t, s, entities.RenderRequest{Renderer: "uppercase", ID: "lang"})
	assert.Equal(t, "FR", v.Text)

	v = render(t, s, entities.RenderRequest{Renderer: "trim", ID: "name", Differentiator: "missing"})
	assert.Equal(t, "from attribute", v.Text)
}

func TestRender_NullPolicies(t *testing.T) {
	s, _ := newTestService(t)

	for _, name := range []string{"mask", "creditCard", "capitalize", "abbreviate", "encode", "qrCode", "shortUrl"} {
		v := render(t, s, entities.RenderRequest{Renderer: name, ID: "absent"})
		assert.True(t, v.Null, name)
	}

	v := render(t, s, entities.RenderRequest{Renderer: "validateCreditCard", ID: "absent"})
	assert.Equal(t, entities.Text("false"), v)

	v = render(t, s, entities.RenderRequest{Renderer: "normalize", ID: "absent"})
	assert.Equal(t, entities.Text(""), v)

	v = render(t, s, entities.RenderRequest{Renderer: "yearIso", ID: "absent"})
	assert.Equal(t, entities.Text("2024"), v)
}

func TestRender_NilStore(t *testing.T) {
	s, _ := newTestService(t)

	v, err := s.Render(context.Background(), nil, entities.RenderRequest{Renderer: "mask", ID: "card"})
	require.NoError(t, err)
	assert.True(t, v.Null)
}

func TestRender_Config(t *testing.T) {
	s, _ := newTestService(t)

	v := render(t, s, entities.RenderRequest{Renderer: "mask", ID: "card", Config: "mask=#\nunmasked=4"})
	assert.Equal(t, "###############6430", v.Text)

	v = render(t, s, entities.RenderRequest{Renderer: "abbreviate", ID: "name", Config: "max=6\nmark=.."})
	assert.Equal(t, "ada ..", v.Text)

	v = render(t, s, entities.RenderRequest{Renderer: "validateCreditCard", ID: "card"})
	assert.Equal(t, "true", v.Text)

	v = render(t, s, entities.RenderRequest{Renderer: "creditCard", ID: "card"})
	assert.Equal(t, "6430", v.Text)
}

func TestRender_OutputEncoding(t *testing.T) {
	s, _ := newTestService(t)

	v := render(t, s, entities.RenderRequest{Renderer: "capitalize", ID: "name", ContentType: entities.ContentHTML})
	assert.Equal(t, "[html:Ada lovelace]", v.Text)

	v = render(t, s, entities.RenderRequest{Renderer: "htmlEntities", ID: "name", ContentType: entities.ContentHTML})
	assert.Equal(t, "ada lovelace", v.Text)

	v = render(t, s, entities.RenderRequest{Renderer: "encode", ID: "name", Config: "encoding=url", ContentType: entities.ContentXML})
	assert.Equal(t, "ada+lovelace", v.Text)
}

func TestRender_Dates(t *testing.T) {
	s, _ := newTestService(t)

	tests := []struct {
		renderer string
		config   string
		zone     string
		want     string
	}{
		{"dateIso", "", "", "2024-03-05"},
		{"dateTimeIso", "", "", "2024-03-05T14:30:00Z"},
		{"timeIso", "", "", "14:30:00"},
		{"yearIso", "", "", "2024"},
		{"dateTimeIso", "", "Asia/Tokyo", "2024-03-05T23:30:00+09:00"},
		{"dateTimeIso", "tz=Asia/Tokyo", "Not/AZone", "2024-03-05T23:30:00+09:00"},
		{"timeIso", "tz=Not/AZone", "", "14:30:00"},
		{"rfc2822", "", "", "Tue, 5 Mar 2024 14:30:00 UTC"},
		{"swatchTime", "", "", "@645"},
		{"swatchTime", "tz=Asia/Tokyo", "", "@645"},
	}
	for _, tt := range tests {
		t.Run(tt.renderer+"_"+tt.config+tt.zone, func(t *testing.T) {
			v := render(t, s, entities.RenderRequest{Renderer: tt.renderer, ID: "name", Config: tt.config, Zone: tt.zone})
			assert.Equal(t, tt.want, v.Text)
		})
	}
}

func TestRender_Locale(t *testing.T) {
	s, _ := newTestService(t)

	v := render(t, s, entities.RenderRequest{Renderer: "rfc2822", ID: "name", Locale: "fr"})
	assert.Equal(t, "mar., 5 mars 2024 14:30:00 UTC", v.Text)

	v = render(t, s, entities.RenderRequest{Renderer: "rfc2822", ID: "name", Locale: "not a locale!"})
	assert.Equal(t, "Tue, 5 Mar 2024 14:30:00 UTC", v.Text)

	tr, _ := newTestService(t, WithLocale(language.Turkish))
	v = render(t, tr, entities.RenderRequest{Renderer: "uppercase", ID: "name"})
	assert.Equal(t, "ADA LOVELACE", v.Text)
	v, err := tr.Render(context.Background(), fakeStore{values: map[string]string{"w/": "istanbul"}}, entities.RenderRequest{Renderer: "uppercase", ID: "w"})
	require.NoError(t, err)
	assert.Equal(t, "İSTANBUL", v.Text)
}

func TestRender_Uptime(t *testing.T) {
	s, _ := newTestService(t, WithStartTime(fixedNow.Add(-2*time.Hour-30*time.Second)))

	v := render(t, s, entities.RenderRequest{Renderer: "uptime", ID: "millis"})
	assert.Equal(t, "1 day 1 hour 1 minute", v.Text)

	v = render(t, s, entities.RenderRequest{Renderer: "uptime", ID: "millis", Locale: "fr"})
	assert.Equal(t, "1 jour 1 heure 1 minute", v.Text)

	v = render(t, s, entities.RenderRequest{Renderer: "uptime", ID: "millis", Config: "day=d\\ \nhour=h\\ \nminute=m"})
	assert.Equal(t, "1d 1h 1m", v.Text)

	v = render(t, s, entities.RenderRequest{Renderer: "uptime", ID: "absent"})
	assert.Equal(t, "2 hours", v.Text)
}

func TestRender_Network(t *testing.T) {
	s, f := newTestService(t)

	v := render(t, s, entities.RenderRequest{Renderer: "qrCode", ID: "site", ContentType: entities.ContentHTML})
	assert.Equal(t, "<svg>https://example.com/a/long/path</svg>", v.Text)

	v = render(t, s, entities.RenderRequest{Renderer: "qrCode", ID: "site", Config: "size=300x300"})
	assert.Equal(t, "<svg>https://example.com/a/long/path</svg>", v.Text)

	v = render(t, s, entities.RenderRequest{Renderer: "shortUrl", ID: "site"})
	assert.Equal(t, "https://is.gd/abc", v.Text)

	assert.Equal(t, []string{
		"qr https://example.com/a/long/path 150x150",
		"qr https://example.com/a/long/path 300x300",
		"short https://example.com/a/long/path",
	}, f.calls)
}

func TestRenderers(t *testing.T) {
	s, _ := newTestService(t)

	names := s.Renderers()
	assert.Len(t, names, 25)
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "validateCreditCard")
	assert.Contains(t, names, "swatchTime")

	names[0] = "changed"
	assert.NotEqual(t, "changed", s.Renderers()[0])
}

func TestNewRenderService_Defaults(t *testing.T) {
	s := NewRenderService(nil, nil, nil, WithClock(func() time.Time { return fixedNow }), WithLocation(time.UTC))

	v, err := s.Render(context.Background(), testStore, entities.RenderRequest{Renderer: "rfc2822", ID: "name", Locale: "fr", ContentType: entities.ContentHTML})
	require.NoError(t, err)
	assert.Equal(t, "Tue, 5 Mar 2024 14:30:00 UTC", v.Text)

	v, err = s.Render(context.Background(), testStore, entities.RenderRequest{Renderer: "uptime", ID: "absent"})
	require.NoError(t, err)
	assert.Equal(t, "0 minutes", v.Text)
}

func TestRender_Concurrent(t *testing.T) {
	s, _ := newTestService(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := s.Render(context.Background(), testStore, entities.RenderRequest{Renderer: "mask", ID: "card"})
			assert.NoError(t, err)
			assert.Equal(t, "***************6430", v.Text)
		}()
	}
	wg.Wait()
}
