// Package templating hosts the renderers in Scriggo templates. Every
// renderer is a template global taking the id of a value and optional
// configuration lines:
//
//	{{ mask("card", "mask=#", "unmasked=4") }}
//	{{ apply("uptime", "started") }}
//	{{ value("name") }}
//
// An id of the form "id#differentiator" selects a differentiated value.
package templating

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"sync"

	"github.com/open2b/scriggo"
	"github.com/open2b/scriggo/native"

	"renderkit/internal/domain"
	"renderkit/internal/domain/entities"
	"renderkit/internal/logging"
	"renderkit/internal/ports/input"
	"renderkit/internal/ports/output"
)

// Engine builds and runs templates against a render use case.
type Engine struct {
	renderer input.RenderUseCase
	logger   *slog.Logger
	locale   string
	zone     string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithLocale sets the locale of every render call of the engine.
func WithLocale(locale string) Option {
	return func(e *Engine) { e.locale = locale }
}

// WithZone sets the time zone of every render call of the engine.
func WithZone(zone string) Option {
	return func(e *Engine) { e.zone = zone }
}

// NewEngine returns an Engine rendering values with uc.
func NewEngine(uc input.RenderUseCase, opts ...Option) *Engine {
	e := &Engine{renderer: uc, logger: logging.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ContentTypeOf returns the content type the renderers encode for in the
// template name. Scriggo escapes the values shown in the other formats
// itself, so they are rendered as text.
func ContentTypeOf(name string) entities.ContentType {
	switch strings.ToLower(path.Ext(name)) {
	case ".html":
		return entities.ContentHTML
	case ".xml", ".svg":
		return entities.ContentXML
	default:
		return entities.ContentText
	}
}

// Render builds the template name read from fsys and writes its output to
// w, resolving values from store. Build and run failures, as well as
// render errors raised by the globals, wrap domain.ErrTemplate.
func (e *Engine) Render(ctx context.Context, w io.Writer, fsys fs.FS, name string, store output.ValueStore) error {
	x := &execution{engine: e, store: store, ct: ContentTypeOf(name)}

	tmpl, err := scriggo.BuildTemplate(fsys, name, &scriggo.BuildOptions{Globals: x.globals()})
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTemplate, err)
	}
	if err := tmpl.Run(w, nil, &scriggo.RunOptions{Context: ctx}); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTemplate, err)
	}
	if err := x.failure(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTemplate, err)
	}
	e.logger.Debug("template rendered", "name", name, "contentType", x.ct.String())
	return nil
}

// RenderString renders src as a template named name.
func (e *Engine) RenderString(ctx context.Context, name, src string, store output.ValueStore) (string, error) {
	var b strings.Builder
	if err := e.Render(ctx, &b, scriggo.Files{name: []byte(src)}, name, store); err != nil {
		return "", err
	}
	return b.String(), nil
}

// execution is the state of a single template run.
type execution struct {
	engine *Engine
	store  output.ValueStore
	ct     entities.ContentType

	mu  sync.Mutex
	err error
}

func (x *execution) failure() error {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.err
}

func (x *execution) fail(err error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.err == nil {
		x.err = err
	}
}

// render runs renderer on the value id. Errors are kept for the end of the
// run and render as "".
func (x *execution) render(ctx context.Context, renderer, id string, config []string) string {
	id, diff, _ := strings.Cut(id, "#")
	v, err := x.engine.renderer.Render(ctx, x.store, entities.RenderRequest{
		Renderer:       renderer,
		ID:             id,
		Differentiator: diff,
		Config:         strings.Join(config, "\n"),
		ContentType:    x.ct,
		Locale:         x.engine.locale,
		Zone:           x.engine.zone,
	})
	if err != nil {
		x.fail(err)
		return ""
	}
	return v.String()
}

func (x *execution) value(id string) string {
	if x.store == nil {
		return ""
	}
	id, diff, _ := strings.Cut(id, "#")
	if v, ok := x.store.Value(id, diff); ok {
		return v
	}
	v, _ := x.store.Attribute(id)
	return v
}

// globals declares value, apply and one function per renderer. In HTML
// templates the renderers return native.HTML as their output is already
// escaped.
func (x *execution) globals() native.Declarations {
	decl := native.Declarations{"value": x.value}

	if x.ct == entities.ContentHTML {
		decl["apply"] = func(env native.Env, renderer, id string, config ...string) native.HTML {
			return native.HTML(x.render(env.Context(), renderer, id, config))
		}
		for _, name := range x.engine.renderer.Renderers() {
				decl[name] = func(env native.Env, id string, config ...string) native.HTML {
				return native.HTML(x.render(env.Context(), name, id, config))
			}
		}
		return decl
	}

	decl["apply"] = func(env native.Env, renderer, id string, config ...string) string {
		return x.render(env.Context(), renderer, id, config)
	}
	for _, name := range x.engine.renderer.Renderers() {
		decl[name] = func(env native.Env, id string, config ...string) string {
			return x.render(env.Context(), name, id, config)
		}
	}
	return decl
}
