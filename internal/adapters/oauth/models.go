package oauth

import (
	"fmt"
	"strconv"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/textutil"
)

const cdnBaseURL = "https://cdn.discordapp.com"

type DiscordUser struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name"`
	Email      string `json:"email"`
	Verified   bool   `json:"verified"`
	Avatar     string `json:"avatar"`
}

// ToDomain maps the account onto a site user. The display name falls back from
// the global name to the username, then the email local part, then "User".
func (u *DiscordUser) ToDomain() *domain.User {
	email := ""
	if u.Verified {
		email = u.Email
	}
	return &domain.User{
		ID:          u.ID,
		DisplayName: textutil.DisplayName(email, "User", u.GlobalName, u.Username),
		Email:       email,
		AvatarURL:   u.AvatarURL(),
	}
}

func (u *DiscordUser) AvatarURL() string {
	if u.Avatar != "" {
		return fmt.Sprintf("%s/avatars/%s/%s.png", cdnBaseURL, u.ID, u.Avatar)
	}
	// Accounts without an avatar get one of six defaults keyed by the snowflake.
	index := uint64(0)
	if id, err := strconv.ParseUint(u.ID, 10, 64); err == nil {
		index = (id >> 22) % 6
	}
	return fmt.Sprintf("%s/embed/avatars/%d.png", cdnBaseURL, index)
}
