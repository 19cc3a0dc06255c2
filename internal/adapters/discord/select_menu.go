package discord

import (
	"github.com/bwmarrin/discordgo"

	"renderkit/internal/ports/output"
	pkgdiscord "renderkit/pkg/discord"
)

// HandleRenderers liste les renderers, avec un menu pour en lancer un.
func (h *Handler) HandleRenderers(s *discordgo.Session, i *discordgo.InteractionCreate) {
	resp := renderersResponse(h.translator, string(i.Locale), h.renderUseCase.Renderers())
	if err := s.InteractionRespond(i.Interaction, resp); err != nil {
		h.logger.Error("❌ liste des renderers impossible", "error", err)
	}
}

// HandleSelectRenderer ouvre le modal du renderer choisi dans le menu.
func (h *Handler) HandleSelectRenderer(s *discordgo.Session, i *discordgo.InteractionCreate) {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return
	}
	h.openRenderModal(s, i, values[0])
}

func renderersResponse(tr output.T, locale string, names []string) *discordgo.InteractionResponse {
	options := make([]discordgo.SelectMenuOption, 0, maxChoices)
	for _, name := range names {
		if len(options) == maxChoices {
			break
		}
		options = append(options, discordgo.SelectMenuOption{Label: name, Value: name})
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				pkgdiscord.BuildRenderersEmbed(tr.T(locale, "render_list_title", nil), names),
			},
			Flags: discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							CustomID:    selectRenderer,
							Placeholder: tr.T(locale, "render_select_placeholder", nil),
							Options:     options,
						},
					},
				},
			},
		},
	}
}
