package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	SessionSecret string
	SessionTTL    time.Duration
	HTTPAddr      string
	MetricsAddr   string
	PublicBaseURL string
	CookieSecure  bool

	OAuthClientID     string
	OAuthClientSecret string
	OAuthRedirectURL  string

	AdminUserIDs []string

	DiscordToken             string
	DiscordGuildID           string
	DiscordChannelModeration string

	ReviewReminderInterval time.Duration
	ClusterRadius          float64
	MaxImportWorlds        int
}

// DiscordEnabled reports whether a bot token was configured.
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := secretOrEnv("database_url", "DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set (via secret or env var)")
	}

	sessionSecret := secretOrEnv("session_secret", "SESSION_SECRET")
	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is not set (via secret or env var)")
	}

	cfg := &Config{
		DatabaseURL:              dbURL,
		SessionSecret:            sessionSecret,
		SessionTTL:               envDuration("SESSION_TTL", 24*time.Hour),
		HTTPAddr:                 envString("HTTP_ADDR", ":8080"),
		MetricsAddr:              envString("METRICS_ADDR", ":2112"),
		PublicBaseURL:            strings.TrimRight(envString("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		CookieSecure:             envBool("COOKIE_SECURE", false),
		OAuthClientID:            envString("OAUTH_CLIENT_ID", ""),
		OAuthClientSecret:        secretOrEnv("oauth_client_secret", "OAUTH_CLIENT_SECRET"),
		OAuthRedirectURL:         envString("OAUTH_REDIRECT_URL", ""),
		AdminUserIDs:             envList("ADMIN_USER_IDS"),
		DiscordToken:             secretOrEnv("discord_token", "DISCORD_TOKEN"),
		DiscordGuildID:           envString("DISCORD_GUILD_ID", ""),
		DiscordChannelModeration: envString("DISCORD_CHANNEL_MODERATION", "world-review"),
		ReviewReminderInterval:   envDuration("REVIEW_REMINDER_INTERVAL", 6*time.Hour),
		ClusterRadius:            envFloat("CLUSTER_RADIUS", 6),
		MaxImportWorlds:          envInt("MAX_IMPORT_WORLDS", 5000),
	}

	if cfg.OAuthRedirectURL == "" {
		cfg.OAuthRedirectURL = cfg.PublicBaseURL + "/auth/callback"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

var secretsDir = "/run/secrets/"

func readSecret(name string) string {
	data, err := os.ReadFile(secretsDir + name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func secretOrEnv(secret, key string) string {
	if v := readSecret(secret); v != "" {
		return v
	}
	return os.Getenv(key)
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// envList splits a comma separated value, dropping blanks.
func envList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
