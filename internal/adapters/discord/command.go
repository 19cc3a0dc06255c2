package discord

import (
	"github.com/bwmarrin/discordgo"

	"renderkit/internal/ports/output"
)

const (
	commandRender    = "render"
	commandRenderers = "renderers"
	optionRenderer   = "renderer"

	modalRenderPrefix  = "render_modal_"
	buttonRenderPrefix = "btn_render_again_"
	selectRenderer     = "select_renderer"

	inputValue  = "value"
	inputConfig = "config"

	// Discord caps the choices of an option and the options of a select menu.
	maxChoices = 25
)

// Commands returns the slash commands of the bot, described in locale.
func Commands(tr output.T, locale string, renderers []string) []*discordgo.ApplicationCommand {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, maxChoices)
	for _, name := range renderers {
		if len(choices) == maxChoices {
			break
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: name, Value: name})
	}
	return []*discordgo.ApplicationCommand{
		{
			Name:        commandRender,
			Description: tr.T(locale, "render_command_description", nil),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionRenderer,
					Description: tr.T(locale, "render_option_renderer", nil),
					Required:    true,
					Choices:     choices,
				},
			},
		},
		{
			Name:        commandRenderers,
			Description: tr.T(locale, "render_renderers_description", nil),
		},
	}
}

func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	switch data.Name {
	case commandRender:
		var renderer string
		for _, opt := range data.Options {
			if opt.Name == optionRenderer {
				renderer = opt.StringValue()
			}
		}
		h.openRenderModal(s, i, renderer)
	case commandRenderers:
		h.HandleRenderers(s, i)
	}
}

// openRenderModal asks for the value and the configuration of a render.
func (h *Handler) openRenderModal(s *discordgo.Session, i *discordgo.InteractionCreate, renderer string) {
	if err := s.InteractionRespond(i.Interaction, renderModal(h.translator, string(i.Locale), renderer)); err != nil {
		h.logger.Error("❌ ouverture du modal impossible", "renderer", renderer, "error", err)
	}
}

func renderModal(tr output.T, locale, renderer string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: modalRenderPrefix + renderer,
			Title:    tr.T(locale, "render_modal_title", map[string]any{"Renderer": renderer}),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    inputValue,
						Label:       tr.T(locale, "render_field_value", nil),
						Style:       discordgo.TextInputParagraph,
						Required:    false,
						Placeholder: tr.T(locale, "render_placeholder_value", nil),
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    inputConfig,
						Label:       tr.T(locale, "render_field_config", nil),
						Style:       discordgo.TextInputParagraph,
						Required:    false,
						Placeholder: tr.T(locale, "render_placeholder_config", nil),
					},
				}},
			},
		},
	}
}
