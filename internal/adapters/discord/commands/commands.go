package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/adapters/discord/formatting"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

const maxChoices = 25

type BotHandler struct {
	Service Moderation
}

func ReadyHandler(session *discordgo.Session, ready *discordgo.Ready) {
	slog.Info("Fabled Galaxy bot is online!", "user", ready.User.Username, "guilds", len(ready.Guilds))
}

func (h *BotHandler) Pending(s DiscordSession, i *discordgo.InteractionCreate) {
	worlds, err := h.Service.Pending(context.Background(), interactionUser(i))
	if err != nil {
		slog.Error("Failed to list pending worlds", "error", err)
		respond(s, i, errorMessage(err, formatting.MsgFetchError), true)
		return
	}

	respond(s, i, formatting.MsgPendingList(worlds), true)
}

func (h *BotHandler) Approve(s DiscordSession, i *discordgo.InteractionCreate) {
	h.decide(s, i, h.Service.Approve, formatting.MsgApproved)
}

func (h *BotHandler) Reject(s DiscordSession, i *discordgo.InteractionCreate) {
	h.decide(s, i, h.Service.Reject, formatting.MsgRejected)
}

type decision func(ctx context.Context, mod *domain.User, id string) (*domain.WorldRecord, error)

func (h *BotHandler) decide(s DiscordSession, i *discordgo.InteractionCreate, fn decision, reply func(string) string) {
	if i.Type == discordgo.InteractionApplicationCommandAutocomplete {
		h.handlePendingAutocomplete(s, i)
		return
	}

	id := getStringOption(i.ApplicationCommandData().Options, "id")
	if id == "" {
		respond(s, i, formatting.MsgWorldIDRequired, true)
		return
	}

	w, err := fn(context.Background(), interactionUser(i), id)
	if err != nil {
		slog.Error("Failed to moderate world", "world_id", id, "error", err)
		respond(s, i, errorMessage(err, formatting.MsgModerationError), true)
		return
	}

	respond(s, i, reply(w.Name), false)
}

func (h *BotHandler) DeleteWorld(s DiscordSession, i *discordgo.InteractionCreate) {
	if i.Type == discordgo.InteractionApplicationCommandAutocomplete {
		h.handlePendingAutocomplete(s, i)
		return
	}

	id := getStringOption(i.ApplicationCommandData().Options, "id")
	if id == "" {
		respond(s, i, formatting.MsgWorldIDRequired, true)
		return
	}

	if err := h.Service.Delete(context.Background(), interactionUser(i), id); err != nil {
		slog.Error("Failed to delete world", "world_id", id, "error", err)
		respond(s, i, errorMessage(err, formatting.MsgModerationError), true)
		return
	}

	respond(s, i, formatting.MsgDeletedReply(id), false)
}

func (h *BotHandler) handlePendingAutocomplete(s DiscordSession, i *discordgo.InteractionCreate) {
	query := getFocusedOption(i.ApplicationCommandData().Options)

	worlds, err := h.Service.Pending(context.Background(), interactionUser(i))
	if err != nil {
		slog.Error("Failed to fetch pending worlds for autocomplete", "error", err)
		return
	}

	choices := buildWorldChoices(worlds, query)
	if err := respondAutocomplete(s, i, choices); err != nil {
		slog.Error("Failed to send autocomplete response", "error", err)
	}
}

func buildWorldChoices(worlds []domain.WorldRecord, query string) []*discordgo.ApplicationCommandOptionChoice {
	query = strings.ToLower(query)

	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, w := range worlds {
		if strings.Contains(strings.ToLower(w.Name), query) || strings.HasPrefix(strings.ToLower(w.ID), query) {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  formatting.ChoiceName(w),
				Value: w.ID,
			})
		}
		if len(choices) >= maxChoices {
			break
		}
	}
	return choices
}

func errorMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return formatting.MsgWorldNotFound
	case errors.Is(err, domain.ErrAlreadyModerated):
		return formatting.MsgAlreadyModerated
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrUnauthenticated):
		return formatting.MsgModeratorRequired
	default:
		return fallback
	}
}
