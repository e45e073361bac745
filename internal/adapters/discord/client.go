package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/adapters/discord/formatting"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/adapters/metrics"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/config"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

type DiscordSession interface {
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier posts moderation events to the configured channel of one guild.
type Notifier struct {
	session DiscordSession
	guildID string
	channel string
	cache   *channelCache
}

func NewNotifier(session DiscordSession, cfg *config.Config) *Notifier {
	return &Notifier{
		session: session,
		guildID: cfg.DiscordGuildID,
		channel: cfg.DiscordChannelModeration,
		cache:   newChannelCache(),
	}
}

func (n *Notifier) NotifySubmission(ctx context.Context, w *domain.WorldRecord) error {
	return n.send(ctx, "submission", formatting.MsgSubmission(w))
}

func (n *Notifier) NotifyDecision(ctx context.Context, w *domain.WorldRecord, moderator string) error {
	return n.send(ctx, "decision", formatting.MsgDecision(w, moderator))
}

func (n *Notifier) NotifyDeleted(ctx context.Context, id, moderator string) error {
	return n.send(ctx, "decision", formatting.MsgDeleted(id, moderator))
}

func (n *Notifier) SendReminder(ctx context.Context, pending int) error {
	return n.send(ctx, "reminder", formatting.MsgReminder(pending))
}

func (n *Notifier) send(ctx context.Context, kind, message string) error {
	channelID, err := n.resolveChannelID(ctx)
	if err != nil {
		slog.Error("Failed to get channel ID", "guild_id", n.guildID, "channel_name", n.channel, "error", err)
		return err
	}

	if _, err := n.session.ChannelMessageSend(channelID, message, discordgo.WithContext(ctx)); err != nil {
		slog.Error("Failed to send message", "channel_id", channelID, "error", err)
		n.cache.Invalidate(n.guildID, n.channel)
		metrics.DiscordMessagesSent.WithLabelValues(kind, "failure").Inc()
		return fmt.Errorf("send %s message: %w", kind, err)
	}

	metrics.DiscordMessagesSent.WithLabelValues(kind, "success").Inc()
	return nil
}

func (n *Notifier) resolveChannelID(ctx context.Context) (string, error) {
	if id, ok := n.cache.Get(n.guildID, n.channel); ok {
		return id, nil
	}

	id, err := n.fetchChannelID(ctx)
	if err != nil {
		return "", err
	}

	n.cache.Set(n.guildID, n.channel, id)
	return id, nil
}

func (n *Notifier) fetchChannelID(ctx context.Context) (string, error) {
	if n.guildID == "" {
		return "", fmt.Errorf("DISCORD_GUILD_ID is not configured")
	}

	channels, err := n.session.GuildChannels(n.guildID, discordgo.WithContext(ctx))
	if err != nil {
		slog.Error("Failed to fetch guild channels", "guild_id", n.guildID, "error", err)
		return "", err
	}

	for _, ch := range channels {
		if ch.Name == n.channel && ch.Type == discordgo.ChannelTypeGuildText {
			return ch.ID, nil
		}
	}

	return "", fmt.Errorf("channel %s not found", n.channel)
}

// NoopNotifier drops every notification. It stands in when no bot token is configured.
type NoopNotifier struct{}

func (NoopNotifier) NotifySubmission(context.Context, *domain.WorldRecord) error { return nil }

func (NoopNotifier) NotifyDecision(context.Context, *domain.WorldRecord, string) error { return nil }

func (NoopNotifier) NotifyDeleted(context.Context, string, string) error { return nil }

func (NoopNotifier) SendReminder(context.Context, int) error { return nil }
