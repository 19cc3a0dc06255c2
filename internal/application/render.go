package application

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"

	"renderkit/internal/domain"
	"renderkit/internal/domain/entities"
	"renderkit/internal/logging"
	"renderkit/internal/ports/input"
	"renderkit/internal/ports/output"
	"renderkit/pkg/renderutils"
	"renderkit/pkg/tz"
)

var _ input.RenderUseCase = (*RenderService)(nil)

// RenderService resolves template values and runs them through the named
// renderer.
type RenderService struct {
	fetcher   output.Fetcher
	localizer output.Localizer
	encoder   output.OutputEncoder
	locale    language.Tag
	location  *time.Location
	now       func() time.Time
	startedAt time.Time
	logger    *slog.Logger
	renderers map[string]renderer
	names     []string
}

// Option configures a RenderService.
type Option func(*RenderService)

// WithLocale sets the default locale.
func WithLocale(tag language.Tag) Option {
	return func(s *RenderService) { s.locale = tag }
}

// WithLocation sets the default time zone. A nil location is ignored.
func WithLocation(loc *time.Location) Option {
	return func(s *RenderService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithClock sets the function returning the current time.
func WithClock(now func() time.Time) Option {
	return func(s *RenderService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithStartTime sets the instant the process uptime is counted from.
func WithStartTime(t time.Time) Option {
	return func(s *RenderService) { s.startedAt = t }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *RenderService) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewRenderService returns a RenderService. A nil fetcher uses a default
// renderutils.Fetcher, a nil localizer uses the English tables and a nil
// encoder writes values unescaped.
func NewRenderService(
	fetcher output.Fetcher,
	localizer output.Localizer,
	encoder output.OutputEncoder,
	opts ...Option,
) *RenderService {
	if fetcher == nil {
		fetcher = renderutils.NewFetcher()
	}
	if localizer == nil {
		localizer = englishLocalizer{}
	}
	if encoder == nil {
		encoder = plainEncoder{}
	}
	s := &RenderService{
		fetcher:   fetcher,
		localizer: localizer,
		encoder:   encoder,
		locale:    language.English,
		location:  time.Local,
		now:       time.Now,
		logger:    logging.Nop(),
		renderers: make(map[string]renderer),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.startedAt.IsZero() {
		s.startedAt = s.now()
	}
	for name, r := range builtinRenderers() {
		s.renderers[strings.ToLower(name)] = r
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)
	return s
}

// Renderers returns the names of the renderers in alphabetical order.
func (s *RenderService) Renderers() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Render resolves the value req.ID from store and renders it with the
// renderer req.Renderer. Renderer names are case-insensitive.
//
// The only errors are ErrEmptyRenderer and ErrUnknownRenderer. Malformed
// configuration, invalid input and network failures are recovered by the
// renderers themselves.
func (s *RenderService) Render(ctx context.Context, store output.ValueStore, req entities.RenderRequest) (entities.Value, error) {
	name := strings.TrimSpace(req.Renderer)
	if name == "" {
		return entities.Null(), domain.ErrEmptyRenderer
	}
	r, ok := s.renderers[strings.ToLower(name)]
	if !ok {
		return entities.Null(), fmt.Errorf("%w: %q", domain.ErrUnknownRenderer, name)
	}

	v := resolve(store, req.ID, req.Differentiator)
	if v.Null {
		if r.null == nullPassThrough {
			return v, nil
		}
		v = entities.Text("")
	}

	props := renderutils.ParseProperties(req.Config)
	c := &renderCall{
		ctx:      ctx,
		value:    v.Text,
		props:    props,
		locale:   s.resolveLocale(req.Locale),
		location: tz.Resolve(props.String("tz", ""), tz.Resolve(req.Zone, s.location)),
		now:      s.now(),
	}
	out := r.fn(s, c)
	if !r.final {
		out = s.encoder.Encode(req.ContentType, out)
	}
	s.logger.Debug("render", "renderer", name, "id", req.ID, "contentType", req.ContentType.String())
	return entities.Text(out), nil
}

// resolveLocale returns the locale named by id, or the default locale if id
// is blank or invalid.
func (s *RenderService) resolveLocale(id string) language.Tag {
	if strings.TrimSpace(id) == "" {
		return s.locale
	}
	tag, err := language.Parse(id)
	if err != nil {
		s.logger.Debug("render: invalid locale", "locale", id, "error", err)
		return s.locale
	}
	return tag
}

// resolve looks up id in the values of store, then in its attributes.
func resolve(store output.ValueStore, id, differentiator string) entities.Value {
	if store == nil {
		return entities.Null()
	}
	if v, ok := store.Value(id, differentiator); ok {
		return entities.Text(v)
	}
	if v, ok := store.Attribute(id); ok {
		return entities.Text(v)
	}
	return entities.Null()
}

// englishLocalizer returns the built-in English tables for every locale.
type englishLocalizer struct{}

func (englishLocalizer) CalendarNames(string) renderutils.CalendarNames {
	return renderutils.EnglishCalendarNames
}

func (englishLocalizer) UptimeLabels(string) renderutils.UptimeLabels {
	return renderutils.DefaultUptimeLabels
}

// plainEncoder writes values as they are.
type plainEncoder struct{}

func (plainEncoder) Encode(_ entities.ContentType, s string) string { return s }
