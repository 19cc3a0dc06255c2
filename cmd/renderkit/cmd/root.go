package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"renderkit/internal/bootstrap"
	"renderkit/internal/config"
	"renderkit/internal/logging"
)

var (
	locale   string
	zone     string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "renderkit",
	Short: "Value formatting routines for templates",
	Long: `renderkit runs the value renderers of the template engine from the
shell: case conversion, encoders, ISO and RFC 2822 dates, Swatch beats,
uptime, masking, credit card checks, slugs, QR codes and short URLs.

Configuration is read from the environment and an optional .env file
(RENDER_LOCALE, RENDER_TZ, QRCODE_URL, SHORTENER_URL, LOG_LEVEL, ...).`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "locale of the renders (default: RENDER_LOCALE)")
	rootCmd.PersistentFlags().StringVar(&zone, "tz", "", "IANA time zone of the renders (default: RENDER_TZ)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (default: LOG_LEVEL)")
}

// loadServices loads the configuration, applies the global flags and wires
// the services.
func loadServices() (*bootstrap.Services, *slog.Logger, error) {
	if locale != "" {
		_ = os.Setenv("RENDER_LOCALE", locale)
	}
	if zone != "" {
		_ = os.Setenv("RENDER_TZ", zone)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logCfg := cfg.Logging()
	if logLevel != "" {
		logCfg.Level = logging.ParseLevel(logLevel)
	}
	logger := logging.New(logCfg)
	return bootstrap.Build(cfg, logger), logger, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Erreur : %s : %v\n", msg, err)
}
