package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"renderkit/internal/domain/entities"
)

const statusInterval = time.Minute

// RunScheduledTasks met à jour le statut du bot (uptime et heure Swatch)
// toutes les minutes, jusqu'à l'annulation de ctx.
func (h *Handler) RunScheduledTasks(ctx context.Context, s *discordgo.Session) {
	ticker := time.NewTicker(statusInterval)
	defer ticker.Stop()
	for {
		if err := s.UpdateCustomStatus(h.statusText(ctx)); err != nil {
			h.logger.Warn("⚠️ mise à jour du statut impossible", "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// statusText renders the process uptime followed by the Swatch beat.
func (h *Handler) statusText(ctx context.Context) string {
	text := ""
	for _, renderer := range []string{"uptime", "swatchTime"} {
		v, err := h.renderUseCase.Render(ctx, nil, entities.RenderRequest{Renderer: renderer, Zone: h.zone})
		if err != nil {
			h.logger.Warn("⚠️ statut : rendu impossible", "renderer", renderer, "error", err)
			continue
		}
		if text != "" {
			text += " · "
		}
		text += v.String()
	}
	return "⏱️ " + text
}
