package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"renderkit/internal/ports/output"
)

func againButton(tr output.T, locale, renderer string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    tr.T(locale, "render_button_again", nil),
				Style:    discordgo.SecondaryButton,
				CustomID: buttonRenderPrefix + renderer,
			},
		}},
	}
}

// HandleRenderAgain rouvre le modal du renderer affiché dans la réponse.
func (h *Handler) HandleRenderAgain(s *discordgo.Session, i *discordgo.InteractionCreate) {
	renderer := strings.TrimPrefix(i.MessageComponentData().CustomID, buttonRenderPrefix)
	h.openRenderModal(s, i, renderer)
}
