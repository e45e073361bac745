package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Validation constants define acceptable bounds for configuration values
const (
	// Session secret signs HS256 cookies
	minSessionSecretLength = 32

	minSessionTTL = 5 * time.Minute
	maxSessionTTL = 30 * 24 * time.Hour

	// Discord tokens are typically 50+ characters
	minTokenLength = 50

	// Reminder interval bounds
	minReminderInterval = 1 * time.Minute
	maxReminderInterval = 7 * 24 * time.Hour

	// Cluster radius is a percentage of the map
	minClusterRadius = 0.0
	maxClusterRadius = 50.0

	minImportWorlds = 1

	// Discord limit
	maxChannelNameLength = 100
)

// Validate checks if the configuration values are valid and within acceptable ranges.
// It returns all validation errors at once using errors.Join.
//
// The Discord bot settings are only checked when DISCORD_TOKEN is set, and the
// OAuth settings only when OAUTH_CLIENT_ID is set.
func (c *Config) Validate() error {
	var errs []error

	if err := c.validateSessionSecret(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateSessionTTL(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateAddrs(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateOAuth(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateDiscord(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateClusterRadius(); err != nil {
		errs = append(errs, err)
	}

	if c.MaxImportWorlds < minImportWorlds {
		errs = append(errs, fmt.Errorf("MAX_IMPORT_WORLDS must be at least %d, got %d", minImportWorlds, c.MaxImportWorlds))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %w", errors.Join(errs...))
	}

	return nil
}

func (c *Config) validateSessionSecret() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required but not set")
	}

	if len(c.SessionSecret) < minSessionSecretLength {
		return fmt.Errorf(
			"SESSION_SECRET is too short: %d chars, expected %d+",
			len(c.SessionSecret), minSessionSecretLength,
		)
	}

	return nil
}

func (c *Config) validateSessionTTL() error {
	if c.SessionTTL < minSessionTTL || c.SessionTTL > maxSessionTTL {
		return fmt.Errorf(
			"SESSION_TTL must be between %v and %v, got %v",
			minSessionTTL, maxSessionTTL, c.SessionTTL,
		)
	}
	return nil
}

func (c *Config) validateAddrs() error {
	var errs []error

	if c.HTTPAddr == "" {
		errs = append(errs, fmt.Errorf("HTTP_ADDR cannot be empty"))
	}
	if c.MetricsAddr == "" {
		errs = append(errs, fmt.Errorf("METRICS_ADDR cannot be empty"))
	}
	if c.HTTPAddr != "" && c.HTTPAddr == c.MetricsAddr {
		errs = append(errs, fmt.Errorf("HTTP_ADDR and METRICS_ADDR must differ, both are %s", c.HTTPAddr))
	}
	if err := validateURL("PUBLIC_BASE_URL", c.PublicBaseURL); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// validateOAuth requires the secret and redirect once a client id is configured
func (c *Config) validateOAuth() error {
	if c.OAuthClientID == "" {
		return nil
	}

	var errs []error
	if c.OAuthClientSecret == "" {
		errs = append(errs, fmt.Errorf("OAUTH_CLIENT_SECRET is required when OAUTH_CLIENT_ID is set"))
	}
	if err := validateURL("OAUTH_REDIRECT_URL", c.OAuthRedirectURL); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c *Config) validateDiscord() error {
	if !c.DiscordEnabled() {
		return nil
	}

	var errs []error

	if len(c.DiscordToken) < minTokenLength {
		errs = append(errs, fmt.Errorf(
			"DISCORD_TOKEN appears invalid (too short: %d chars, expected %d+)",
			len(c.DiscordToken), minTokenLength,
		))
	}

	if err := validateChannelName("DISCORD_CHANNEL_MODERATION", c.DiscordChannelModeration); err != nil {
		errs = append(errs, err)
	}

	if c.ReviewReminderInterval < minReminderInterval || c.ReviewReminderInterval > maxReminderInterval {
		errs = append(errs, fmt.Errorf(
			"REVIEW_REMINDER_INTERVAL must be between %v and %v, got %v",
			minReminderInterval, maxReminderInterval, c.ReviewReminderInterval,
		))
	}

	return errors.Join(errs...)
}

func (c *Config) validateClusterRadius() error {
	if c.ClusterRadius <= minClusterRadius || c.ClusterRadius > maxClusterRadius {
		return fmt.Errorf(
			"CLUSTER_RADIUS must be in (%v, %v], got %v",
			minClusterRadius, maxClusterRadius, c.ClusterRadius,
		)
	}
	return nil
}

// validateChannelName validates a single channel name
func validateChannelName(fieldName, channelName string) error {
	if channelName == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}

	if len(channelName) > maxChannelNameLength {
		return fmt.Errorf(
			"%s must be at most %d characters (Discord limit), got %d",
			fieldName, maxChannelNameLength, len(channelName),
		)
	}

	return nil
}

func validateURL(fieldName, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", fieldName, raw)
	}
	return nil
}
