package oauth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/config"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"

	"golang.org/x/oauth2"
)

var DiscordEndpoint = oauth2.Endpoint{
	AuthURL:   "https://discord.com/oauth2/authorize",
	TokenURL:  "https://discord.com/api/oauth2/token",
	AuthStyle: oauth2.AuthStyleInParams,
}

var scopes = []string{"identify", "email"}

// Provider signs users in with Discord.
type Provider struct {
	config     *oauth2.Config
	api        *Client
	httpClient *http.Client
}

func NewProvider(cfg *config.Config) *Provider {
	return newProvider(&oauth2.Config{
		ClientID:     cfg.OAuthClientID,
		ClientSecret: cfg.OAuthClientSecret,
		RedirectURL:  cfg.OAuthRedirectURL,
		Endpoint:     DiscordEndpoint,
		Scopes:       scopes,
	}, NewClient())
}

func newProvider(conf *oauth2.Config, api *Client) *Provider {
	return &Provider{config: conf, api: api, httpClient: api.httpClient}
}

func (p *Provider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

func (p *Provider) Exchange(ctx context.Context, code string) (*domain.User, error) {
	if code == "" {
		return nil, fmt.Errorf("exchange code: empty code")
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	user, err := p.api.CurrentUser(ctx, token)
	if err != nil {
		return nil, err
	}
	return user.ToDomain(), nil
}
