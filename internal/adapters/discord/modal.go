package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"renderkit/internal/domain/entities"
	"renderkit/internal/infrastructure/store"
	pkgdiscord "renderkit/pkg/discord"
)

// valueID is the id of the modal value in the store of a render.
const valueID = "value"

func (h *Handler) handleRenderModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	renderer := strings.TrimPrefix(data.CustomID, modalRenderPrefix)
	resp := h.renderResponse(context.Background(), renderer, pkgdiscord.ExtractModalData(data), string(i.Locale))
	if name := resolveDisplayName(i.Member); name != "" && len(resp.Data.Embeds) > 0 {
		resp.Data.Embeds[0].Author = &discordgo.MessageEmbedAuthor{Name: name}
	}
	if err := s.InteractionRespond(i.Interaction, resp); err != nil {
		h.logger.Error("❌ réponse au rendu impossible", "renderer", renderer, "error", err)
	}
}

// renderResponse runs renderer on the values of the modal and builds the
// ephemeral reply. An empty value is rendered as a missing one.
func (h *Handler) renderResponse(ctx context.Context, renderer string, values map[string]string, locale string) *discordgo.InteractionResponse {
	st := store.NewMemoryStore()
	if v := values[inputValue]; v != "" {
		st.SetValue(valueID, "", v)
	}

	v, err := h.renderUseCase.Render(ctx, st, entities.RenderRequest{
		Renderer:    renderer,
		ID:          valueID,
		Config:      values[inputConfig],
		ContentType: entities.ContentText,
		Locale:      locale,
		Zone:        h.zone,
	})
	if err != nil {
		h.logger.Info("rendu refusé", "renderer", renderer, "error", err)
		return ephemeral("❌ " + pkgdiscord.DomainErrorMessage(h.translator, locale, err))
	}

	embed := pkgdiscord.BuildRenderEmbed(
		h.translator.T(locale, "render_embed_title", map[string]any{"Renderer": renderer}),
		v,
		h.translator.T(locale, "render_embed_null", nil),
		h.translator.T(locale, "render_embed_footer", map[string]any{"Count": len(h.renderUseCase.Renderers())}),
	)
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: againButton(h.translator, locale, renderer),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	}
}
