package commands

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Commands stay hidden from members who cannot manage messages. The moderator
// check still runs on every invocation.
var moderatorPerms = int64(discordgo.PermissionManageMessages)

func GetApplicationCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:                     "pending",
			Description:              "List worlds waiting for review",
			DefaultMemberPermissions: &moderatorPerms,
		},
		{
			Name:                     "approve",
			Description:              "Approve a pending world and put it on the map",
			DefaultMemberPermissions: &moderatorPerms,
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("id", "World to approve", true, true),
			},
		},
		{
			Name:                     "reject",
			Description:              "Reject a pending world",
			DefaultMemberPermissions: &moderatorPerms,
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("id", "World to reject", true, true),
			},
		},
		{
			Name:                     "delete-world",
			Description:              "Delete a world permanently",
			DefaultMemberPermissions: &moderatorPerms,
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("id", "World id", true, true),
			},
		},
	}
}

// Register wires every command to its handler behind the moderator check.
func Register(r *Router, h *BotHandler, access ModeratorChecker) {
	r.Use(WithModerator(access))
	r.Register("pending", h.Pending)
	r.Register("approve", h.Approve)
	r.Register("reject", h.Reject)
	r.Register("delete-world", h.DeleteWorld)
}

func stringOption(name, description string, required, autocomplete bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         name,
		Description:  description,
		Required:     required,
		Autocomplete: autocomplete,
	}
}

func RegisterCommands(session CommandSession, commands []*discordgo.ApplicationCommand, userID, guildID string) []*discordgo.ApplicationCommand {
	registered := make([]*discordgo.ApplicationCommand, len(commands))

	for i, cmd := range commands {
		result, err := session.ApplicationCommandCreate(userID, guildID, cmd)
		if err != nil {
			slog.Error("Cannot create command", "name", cmd.Name, "error", err)
			continue
		}
		registered[i] = result
		slog.Info("Registered command", "name", cmd.Name, "guild", guildID)
	}

	return registered
}

func CleanupCommands(session CommandSession, commands []*discordgo.ApplicationCommand, userID, guildID string) {
	for _, cmd := range commands {
		if cmd == nil {
			continue
		}
		if err := session.ApplicationCommandDelete(userID, guildID, cmd.ID); err != nil {
			slog.Error("Cannot delete command", "name", cmd.Name, "error", err)
		}
	}
}
