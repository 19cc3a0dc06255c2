// Package bootstrap wires the render service from the configuration, for
// the bot and the CLI.
package bootstrap

import (
	"log/slog"

	"renderkit/internal/application"
	"renderkit/internal/config"
	"renderkit/internal/infrastructure/encoder"
	"renderkit/internal/infrastructure/i18n"
	"renderkit/pkg/renderutils"
)

// Services are the components shared by the binaries.
type Services struct {
	Render     *application.RenderService
	Translator *i18n.Translator
	Fetcher    *renderutils.Fetcher
}

// Build wires output adapters -> application.
func Build(cfg *config.Config, logger *slog.Logger) *Services {
	tr := i18n.NewTranslator(cfg.LanguageTag().String(), logger)
	fetcher := renderutils.NewFetcher(
		renderutils.WithUserAgent(cfg.UserAgent),
		renderutils.WithQRCodeURL(cfg.QRCodeURL),
		renderutils.WithShortenerURL(cfg.ShortenerURL),
		renderutils.WithFetchLogger(logger),
	)
	svc := application.NewRenderService(fetcher, tr, encoder.ContentEncoder{},
		application.WithLocale(cfg.LanguageTag()),
		application.WithLocation(cfg.Location()),
		application.WithLogger(logger),
	)
	return &Services{Render: svc, Translator: tr, Fetcher: fetcher}
}
