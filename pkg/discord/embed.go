package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"renderkit/internal/domain/entities"
	"renderkit/pkg/renderutils"
)

const (
	embedColor = 0x5865F2
	nullColor  = 0x99AAB5

	// Discord rejects embed descriptions longer than this.
	maxDescription = 4096
)

// BuildRenderEmbed builds the embed replying to a render. The value is shown
// in a code block, or as nullText when it is null.
func BuildRenderEmbed(title string, v entities.Value, nullText, footer string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: embedColor,
	}
	if v.Null {
		embed.Description = nullText
		embed.Color = nullColor
	} else {
		embed.Description = codeBlock(v.Text)
	}
	if footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: footer}
	}
	return embed
}

// BuildRenderersEmbed lists the renderer names.
func BuildRenderersEmbed(title string, names []string) *discordgo.MessageEmbed {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "`" + n + "`"
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: renderutils.Abbreviate(strings.Join(quoted, " · "), maxDescription, "…"),
		Color:       embedColor,
	}
}

// codeBlock wraps s in a code block, breaking the fences s contains and
// abbreviating it to the description limit.
func codeBlock(s string) string {
	const fence = "```"
	if s == "" {
		s = " "
	}
	s = strings.ReplaceAll(s, fence, "`\u200b``")
	s = renderutils.Abbreviate(s, maxDescription-2*len(fence)-2, "…")
	return fence + "\n" + s + "\n" + fence
}
