package discord

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"renderkit/internal/config"
	"renderkit/internal/logging"
	"renderkit/internal/ports/input"
	"renderkit/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session    *discordgo.Session
	config     *config.Config
	handler    *Handler
	translator output.T
	renderers  []string
	logger     *slog.Logger
}

// NewBot creates a Bot and wires ports: use case and translator -> handler.
func NewBot(cfg *config.Config, renderUC input.RenderUseCase, translator output.T, logger *slog.Logger) (*Bot, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la création de la session Discord: %w", err)
	}

	bot := &Bot{
		session:    s,
		config:     cfg,
		handler:    NewHandler(renderUC, translator, logger, cfg.Zone),
		translator: translator,
		renderers:  renderUC.Renderers(),
		logger:     logger,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handler.HandleCommand(s, i)
	case discordgo.InteractionModalSubmit:
		b.handler.HandleModalSubmit(s, i)
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		switch {
		case strings.HasPrefix(customID, buttonRenderPrefix):
			b.handler.HandleRenderAgain(s, i)
		case customID == selectRenderer:
			b.handler.HandleSelectRenderer(s, i)
		}
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range Commands(b.translator, b.config.Locale, b.renderers) {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			b.logger.Warn("⚠️ Erreur lors de l'enregistrement de la commande", "command", cmd.Name, "error", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go b.handler.RunScheduledTasks(ctx, b.session)

	fmt.Println("🤖 Bot en ligne ! Appuyez sur CTRL+C pour quitter.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
