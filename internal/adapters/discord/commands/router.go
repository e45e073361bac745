package commands

import (
	"log/slog"
	"sort"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/adapters/metrics"

	"github.com/bwmarrin/discordgo"
)

type CommandHandler func(s DiscordSession, i *discordgo.InteractionCreate)

// Outcomes recorded per interaction.
const (
	outcomeHandled = "handled"
	outcomeUnknown = "unknown"
	outcomeForeign = "foreign_guild"
	outcomePanic   = "panic"
)

// Router dispatches slash commands and their autocomplete requests by name.
// When guildID is set, interactions coming from any other guild or from
// direct messages are dropped before a handler runs.
type Router struct {
	guildID    string
	routes     map[string]CommandHandler
	middleware []Middleware
}

func NewRouter(guildID string) *Router {
	return &Router{
		guildID: guildID,
		routes:  make(map[string]CommandHandler),
	}
}

// Use appends middleware applied to every handler registered afterwards.
// The first middleware given is the outermost.
func (r *Router) Use(mw ...Middleware) {
	r.middleware = append(r.middleware, mw...)
}

func (r *Router) Register(name string, handler CommandHandler) {
	for i := len(r.middleware) - 1; i >= 0; i-- {
		handler = r.middleware[i](handler)
	}
	r.routes[name] = handler
}

// Names lists the registered commands in sorted order.
func (r *Router) Names() []string {
	names := make([]string, 0, len(r.routes))
	for name := range r.routes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Router) Handle(s DiscordSession, i *discordgo.InteractionCreate) {
	if !isCommandInteraction(i.Type) {
		return
	}

	name := i.ApplicationCommandData().Name
	if r.guildID != "" && i.GuildID != r.guildID {
		slog.Warn("Ignoring command from another guild", "name", name, "guild", i.GuildID)
		metrics.DiscordCommands.WithLabelValues(name, outcomeForeign).Inc()
		return
	}

	handler, ok := r.routes[name]
	if !ok {
		slog.Warn("No handler found for command", "name", name)
		metrics.DiscordCommands.WithLabelValues("unknown", outcomeUnknown).Inc()
		return
	}

	slog.Debug("Dispatching command", "name", name, "autocomplete", i.Type == discordgo.InteractionApplicationCommandAutocomplete)
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("Command handler panicked", "name", name, "panic", rec)
			metrics.DiscordCommands.WithLabelValues(name, outcomePanic).Inc()
		}
	}()
	handler(s, i)
	metrics.DiscordCommands.WithLabelValues(name, outcomeHandled).Inc()
}

func (r *Router) HandleFunc() func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		r.Handle(s, i)
	}
}

func isCommandInteraction(t discordgo.InteractionType) bool {
	return t == discordgo.InteractionApplicationCommand ||
		t == discordgo.InteractionApplicationCommandAutocomplete
}
