package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/config"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/ports"

	"golang.org/x/oauth2"
)

var _ ports.IdentityProvider = (*Provider)(nil)

func newDiscordServer(t *testing.T, userJSON string, userStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.Form.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		if r.Form.Get("client_id") != "client" || r.Form.Get("client_secret") != "secret" {
			t.Errorf("expected client credentials in params, got %v", r.Form)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok-123","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/users/@me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(userStatus)
		w.Write([]byte(userJSON))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func testProvider(server *httptest.Server) *Provider {
	return newProvider(&oauth2.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:8080/auth/callback",
		Endpoint: oauth2.Endpoint{
			AuthURL:   server.URL + "/oauth2/authorize",
			TokenURL:  server.URL + "/oauth2/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
		Scopes: scopes,
	}, NewTestClient(server.URL))
}

func TestNewProvider(t *testing.T) {
	p := NewProvider(&config.Config{
		OAuthClientID:     "client",
		OAuthClientSecret: "secret",
		OAuthRedirectURL:  "https://galaxy.example.com/auth/callback",
	})

	if p.config.Endpoint != DiscordEndpoint {
		t.Errorf("expected Discord endpoint, got %+v", p.config.Endpoint)
	}
	if p.api.baseURL != DefaultBaseURL {
		t.Errorf("expected base URL %s, got %s", DefaultBaseURL, p.api.baseURL)
	}
	if _, ok := p.httpClient.Transport.(*MetricsRoundTripper); !ok {
		t.Error("expected requests to be measured")
	}
}

func TestProvider_AuthCodeURL(t *testing.T) {
	p := NewProvider(&config.Config{
		OAuthClientID:    "client",
		OAuthRedirectURL: "https://galaxy.example.com/auth/callback",
	})

	raw := p.AuthCodeURL("state-xyz")
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("invalid URL: %v", err)
	}

	q := u.Query()
	if !strings.HasPrefix(raw, DiscordEndpoint.AuthURL) {
		t.Errorf("expected Discord authorize URL, got %s", raw)
	}
	if q.Get("state") != "state-xyz" {
		t.Errorf("expected state, got %q", q.Get("state"))
	}
	if q.Get("scope") != "identify email" {
		t.Errorf("expected scopes, got %q", q.Get("scope"))
	}
	if q.Get("redirect_uri") != "https://galaxy.example.com/auth/callback" {
		t.Errorf("unexpected redirect %q", q.Get("redirect_uri"))
	}
	if q.Has("prompt") {
		t.Errorf("consent screen should use Discord's default, got prompt=%q", q.Get("prompt"))
	}
}

func TestProvider_Exchange(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		userJSON    string
		userStatus  int
		expectError bool
		wantID      string
		wantName    string
		wantEmail   string
	}{
		{
			name:       "Success",
			code:       "good-code",
			userJSON:   `{"id":"80351110224678912","username":"nelly","global_name":"Nelly","email":"nelly@example.com","verified":true,"avatar":"8342729096ea3675442027381ff50dfe"}`,
			userStatus: http.StatusOK,
			wantID:     "80351110224678912",
			wantName:   "Nelly",
			wantEmail:  "nelly@example.com",
		},
		{
			name:       "Unverified email is dropped",
			code:       "good-code",
			userJSON:   `{"id":"1","username":"astra","email":"astra@example.com","verified":false}`,
			userStatus: http.StatusOK,
			wantID:     "1",
			wantName:   "astra",
			wantEmail:  "",
		},
		{
			name:        "Bad code",
			code:        "bad-code",
			expectError: true,
		},
		{
			name:        "Empty code",
			code:        "",
			expectError: true,
		},
		{
			name:        "User endpoint fails",
			code:        "good-code",
			userJSON:    `{}`,
			userStatus:  http.StatusInternalServerError,
			expectError: true,
		},
		{
			name:        "User without id",
			code:        "good-code",
			userJSON:    `{"username":"ghost"}`,
			userStatus:  http.StatusOK,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newDiscordServer(t, tt.userJSON, tt.userStatus)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			user, err := testProvider(server).Exchange(ctx, tt.code)
			if tt.expectError {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if user.ID != tt.wantID || user.DisplayName != tt.wantName || user.Email != tt.wantEmail {
				t.Errorf("unexpected user %+v", user)
			}
		})
	}
}

func TestDiscordUser_ToDomain(t *testing.T) {
	tests := []struct {
		name     string
		user     DiscordUser
		wantName string
	}{
		{"global name", DiscordUser{ID: "1", Username: "u", GlobalName: "Global"}, "Global"},
		{"username", DiscordUser{ID: "1", Username: "u"}, "u"},
		{"email local part", DiscordUser{ID: "1", Email: "kai@example.com", Verified: true}, "kai"},
		{"fallback", DiscordUser{ID: "1"}, "User"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.ToDomain().DisplayName; got != tt.wantName {
				t.Errorf("expected %q, got %q", tt.wantName, got)
			}
		})
	}
}

func TestDiscordUser_AvatarURL(t *testing.T) {
	withAvatar := DiscordUser{ID: "42", Avatar: "abc"}
	if got := withAvatar.AvatarURL(); got != "https://cdn.discordapp.com/avatars/42/abc.png" {
		t.Errorf("unexpected avatar %q", got)
	}

	// 80351110224678912 >> 22 = 19157197529, which is 5 mod 6.
	fallback := DiscordUser{ID: "80351110224678912"}
	if got := fallback.AvatarURL(); got != "https://cdn.discordapp.com/embed/avatars/5.png" {
		t.Errorf("unexpected default avatar %q", got)
	}
}

func TestEndpointLabel(t *testing.T) {
	tests := map[string]string{
		"/api/oauth2/token":  "token",
		"/api/v10/users/@me": "current_user",
		"/api/v10/guilds":    "unknown",
	}
	for path, want := range tests {
		if got := endpointLabel(path); got != want {
			t.Errorf("endpointLabel(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestMetricsRoundTripper(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	client := &http.Client{Transport: NewMetricsRoundTripper(nil)}
	resp, err := client.Get(server.URL + "/users/@me")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusTeapot {
		t.Errorf("expected proxied status, got %d", resp.StatusCode)
	}
}
