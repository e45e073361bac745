package formatting

import (
	"fmt"
	"strings"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/textutil"
)

const (
	MsgModeratorRequired = "You need to be a Fabled Galaxy moderator to use this command."
	MsgWorldIDRequired   = "World id is required."
	MsgNoPending         = "No worlds are waiting for review."
	MsgFetchError        = "Failed to load the review queue."
	MsgModerationError   = "Failed to update the world."
	MsgWorldNotFound     = "No world with that id exists."
	MsgAlreadyModerated  = "That world has already been reviewed."

	// Discord rejects messages longer than this
	MaxMessageLength = 2000

	maxListed        = 20
	maxDescription   = 200
	autocompleteName = 100
)

func MsgSubmission(w *domain.WorldRecord) string {
	info := w.Type.Info()
	var b strings.Builder
	fmt.Fprintf(&b, "🌌 New world submitted: **%s** (%s %s) by %s\n", w.Name, info.Emoji, info.Label, w.CreatorName())
	fmt.Fprintf(&b, "ID: `%s`\n", w.ID)
	if w.Description != "" {
		fmt.Fprintf(&b, "> %s\n", clip(w.Description, maxDescription))
	}
	if lore := loreLabels(w.Attributes); len(lore) > 0 {
		fmt.Fprintf(&b, "Lore: %s\n", strings.Join(lore, ", "))
	}
	b.WriteString("Use `/approve` or `/reject` to review it.")
	return clip(b.String(), MaxMessageLength)
}

func MsgDecision(w *domain.WorldRecord, moderator string) string {
	switch w.Status {
	case domain.StatusApproved:
		return fmt.Sprintf("✅ **%s** was approved by %s and is now on the map.", w.Name, moderatorName(moderator))
	case domain.StatusRejected:
		return fmt.Sprintf("❌ **%s** was rejected by %s.", w.Name, moderatorName(moderator))
	default:
		return fmt.Sprintf("**%s** is now %s.", w.Name, w.Status)
	}
}

func MsgDeleted(id, moderator string) string {
	return fmt.Sprintf("🗑️ World `%s` was deleted by %s.", id, moderatorName(moderator))
}

func MsgReminder(pending int) string {
	if pending == 1 {
		return "⏳ 1 world is awaiting review."
	}
	return fmt.Sprintf("⏳ %d worlds are awaiting review.", pending)
}

func MsgPendingList(worlds []domain.WorldRecord) string {
	if len(worlds) == 0 {
		return MsgNoPending
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Pending worlds (%d):\n", len(worlds))
	for i, w := range worlds {
		if i == maxListed {
			fmt.Fprintf(&b, "+%d more\n", len(worlds)-maxListed)
			break
		}
		fmt.Fprintf(&b, "%s **%s** by %s, `%s`\n", w.Type.Info().Emoji, w.Name, w.CreatorName(), w.ID)
	}
	return clip(b.String(), MaxMessageLength)
}

func MsgApproved(name string) string {
	return fmt.Sprintf("Approved **%s**.", name)
}

func MsgRejected(name string) string {
	return fmt.Sprintf("Rejected **%s**.", name)
}

func MsgDeletedReply(id string) string {
	return fmt.Sprintf("Deleted world `%s`.", id)
}

// ChoiceName labels a world in an autocomplete list.
func ChoiceName(w domain.WorldRecord) string {
	return clip(fmt.Sprintf("%s (%s)", w.Name, w.CreatorName()), autocompleteName)
}

func loreLabels(a domain.Attributes) []string {
	var labels []string
	for _, key := range domain.LoreKeys {
		if a.Get(key) != "" {
			labels = append(labels, textutil.Label(key))
		}
	}
	return labels
}

func moderatorName(name string) string {
	if name == "" {
		return "a moderator"
	}
	return name
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
