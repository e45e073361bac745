package commands

import (
	"context"
	"log/slog"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/adapters/discord/formatting"

	"github.com/bwmarrin/discordgo"
)

type Middleware func(CommandHandler) CommandHandler

// WithModerator only lets through users who pass the moderator check.
// Discord user ids are the same ids the website login reports, so one admin
// list gates both surfaces.
func WithModerator(access ModeratorChecker) Middleware {
	return func(next CommandHandler) CommandHandler {
		return func(s DiscordSession, i *discordgo.InteractionCreate) {
			user := interactionUser(i)
			if user == nil {
				respond(s, i, formatting.MsgModeratorRequired, true)
				return
			}

			ok, err := access.IsModerator(context.Background(), user.ID)
			if err != nil {
				slog.Error("Failed to check moderator", "user_id", user.ID, "error", err)
			}
			if !ok {
				if i.Type == discordgo.InteractionApplicationCommandAutocomplete {
					return
				}
				respond(s, i, formatting.MsgModeratorRequired, true)
				return
			}
			next(s, i)
		}
	}
}
