package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"renderkit/internal/logging"
)

var envKeys = []string{
	"TOKEN", "GUILD_ID", "RENDER_LOCALE", "RENDER_TZ", "QRCODE_URL",
	"SHORTENER_URL", "RENDER_USER_AGENT", "LOG_LEVEL", "LOG_FORMAT",
}

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, env[k])
	}
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, nil)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, language.English, cfg.LanguageTag())
	assert.Equal(t, time.Local, cfg.Location())
	assert.Equal(t, logging.Config{Level: slog.LevelInfo, Format: logging.FormatText}, cfg.Logging())
}

func TestLoad_Values(t *testing.T) {
	setEnv(t, map[string]string{
		"RENDER_LOCALE": "fr-CH",
		"RENDER_TZ":     "Europe/Zurich",
		"QRCODE_URL":    "http://localhost:8080/qr",
		"SHORTENER_URL": "https://short.example/create",
		"LOG_LEVEL":     "debug",
		"LOG_FORMAT":    "json",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, language.MustParse("fr-CH"), cfg.LanguageTag())
	assert.Equal(t, "Europe/Zurich", cfg.Location().String())
	assert.Equal(t, "http://localhost:8080/qr", cfg.QRCodeURL)
	assert.Equal(t, logging.Config{Level: slog.LevelDebug, Format: logging.FormatJSON}, cfg.Logging())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"locale", map[string]string{"RENDER_LOCALE": "not a locale"}, "RENDER_LOCALE"},
		{"zone", map[string]string{"RENDER_TZ": "Mars/Olympus"}, "RENDER_TZ"},
		{"qrcode scheme", map[string]string{"QRCODE_URL": "ftp://example.com/qr"}, "QRCODE_URL"},
		{"shortener relative", map[string]string{"SHORTENER_URL": "/create.php"}, "SHORTENER_URL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config: "+tt.want)
		})
	}
}

func TestValidateBot(t *testing.T) {
	assert.ErrorContains(t, (&Config{}).ValidateBot(), "TOKEN")
	assert.ErrorContains(t, (&Config{Token: "t", GuildID: "12a"}).ValidateBot(), "GUILD_ID")
	assert.NoError(t, (&Config{Token: "t", GuildID: "123456789"}).ValidateBot())
	assert.NoError(t, (&Config{Token: "t"}).ValidateBot())
}

func TestAccessors_BeforeValidation(t *testing.T) {
	var cfg Config
	assert.Equal(t, language.English, cfg.LanguageTag())
	assert.Equal(t, time.Local, cfg.Location())
}
