package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"renderkit/internal/logging"
	"renderkit/pkg/tz"
)

type Config struct {
	Token   string
	GuildID string

	Locale       string
	Zone         string
	QRCodeURL    string
	ShortenerURL string
	UserAgent    string

	LogLevel  string
	LogFormat string

	tag      language.Tag
	location *time.Location
}

// Load charge la configuration depuis les variables d'environnement et la valide.
// TOKEN n'est vérifié que par ValidateBot : la CLI n'en a pas besoin.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}

	cfg := &Config{
		Token:        os.Getenv("TOKEN"),
		GuildID:      os.Getenv("GUILD_ID"),
		Locale:       os.Getenv("RENDER_LOCALE"),
		Zone:         os.Getenv("RENDER_TZ"),
		QRCodeURL:    os.Getenv("QRCODE_URL"),
		ShortenerURL: os.Getenv("SHORTENER_URL"),
		UserAgent:    os.Getenv("RENDER_USER_AGENT"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
		LogFormat:    os.Getenv("LOG_FORMAT"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applique les règles communes au bot et à la CLI.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = "en"
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return fmt.Errorf("config: RENDER_LOCALE invalide (%q): %w", c.Locale, err)
	}
	c.tag = tag

	loc, err := tz.Load(c.Zone)
	if err != nil {
		return fmt.Errorf("config: RENDER_TZ invalide (%q): %w", c.Zone, err)
	}
	c.location = loc

	for name, raw := range map[string]string{"QRCODE_URL": c.QRCodeURL, "SHORTENER_URL": c.ShortenerURL} {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		parsed, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("config: %s invalide (%q): %w", name, raw, err)
		}
		if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			return fmt.Errorf("config: %s invalide (%q): URL http(s) absolue attendue", name, raw)
		}
	}

	return nil
}

// ValidateBot vérifie les variables dont seul le bot Discord a besoin.
func (c *Config) ValidateBot() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN est requis et ne peut pas être vide")
	}

	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID doit être un ID de serveur Discord (chiffres uniquement)")
		}
	}

	return nil
}

// LanguageTag returns the parsed RENDER_LOCALE, English before validation.
func (c *Config) LanguageTag() language.Tag {
	if c.tag == language.Und {
		return language.English
	}
	return c.tag
}

// Location returns the RENDER_TZ zone, time.Local before validation.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// Logging returns the logger configuration for LOG_LEVEL and LOG_FORMAT.
func (c *Config) Logging() logging.Config {
	return logging.Config{
		Level:  logging.ParseLevel(c.LogLevel),
		Format: logging.ParseFormat(c.LogFormat),
	}
}
