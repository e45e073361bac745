package commands

import (
	"context"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

type DiscordSession interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

type CommandSession interface {
	ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	ApplicationCommandDelete(appID, guildID, cmdID string, options ...discordgo.RequestOption) error
}

type ModeratorChecker interface {
	IsModerator(ctx context.Context, userID string) (bool, error)
}

type Moderation interface {
	Pending(ctx context.Context, mod *domain.User) ([]domain.WorldRecord, error)
	Approve(ctx context.Context, mod *domain.User, id string) (*domain.WorldRecord, error)
	Reject(ctx context.Context, mod *domain.User, id string) (*domain.WorldRecord, error)
	Delete(ctx context.Context, mod *domain.User, id string) error
}
