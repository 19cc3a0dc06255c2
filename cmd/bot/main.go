package main

import (
	"log"
	"os"

	"renderkit/internal/adapters/discord"
	"renderkit/internal/bootstrap"
	"renderkit/internal/config"
	"renderkit/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erreur de configuration: %v", err)
	}
	if err := cfg.ValidateBot(); err != nil {
		log.Fatalf("❌ Erreur de configuration: %v", err)
	}

	logger := logging.New(cfg.Logging())
	svcs := bootstrap.Build(cfg, logger)

	bot, err := discord.NewBot(cfg, svcs.Render, svcs.Translator, logger)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := bot.Start(); err != nil {
		log.Printf("❌ Erreur lors du démarrage du bot: %v", err)
		os.Exit(1)
	}
}
