package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/config"

	"github.com/bwmarrin/discordgo"
)

const presenceText = "the world review queue"

// NewSession builds the moderation bot session. It only needs guild events:
// slash commands arrive as interactions and announcements go out over REST.
func NewSession(cfg *config.Config) (*discordgo.Session, error) {
	token := strings.TrimSpace(cfg.DiscordToken)
	if token == "" {
		return nil, fmt.Errorf("create discord session: token is empty")
	}
	token = strings.TrimPrefix(token, "Bot ")

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		slog.Error("Failed to create discord session", "error", err)
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds
	session.Identify.Presence = discordgo.GatewayStatusUpdate{
		Game:   discordgo.Activity{Name: presenceText, Type: discordgo.ActivityTypeWatching},
		Status: string(discordgo.StatusOnline),
	}

	return session, nil
}
