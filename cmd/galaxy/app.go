package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/adapters/discord"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/adapters/discord/commands"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/adapters/oauth"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/adapters/storage/postgres"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/adapters/web"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/config"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/ports"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/services"

	"github.com/bwmarrin/discordgo"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	config             *config.Config
	store              ports.WorldRepository
	discord            *discordgo.Session
	web                *web.Server
	metricsServer      *http.Server
	reminder           *services.ReviewReminder
	reminderCtx        context.Context
	reminderCancel     context.CancelFunc
	registeredCommands []*discordgo.ApplicationCommand
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := postgres.NewPostgresStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to storage: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	app := &App{config: cfg, store: store}

	var notifier ports.NotificationService = discord.NoopNotifier{}
	if cfg.DiscordEnabled() {
		session, err := discord.NewSession(cfg)
		if err != nil {
			store.Close()
			return nil, err
		}
		app.discord = session
		notifier = discord.NewNotifier(session, cfg)
	} else {
		slog.Info("DISCORD_TOKEN not set, moderation notices are disabled")
	}

	access := services.NewAccessService(store, cfg.AdminUserIDs)
	moderation := services.NewModerationService(store, access, notifier)

	svc := web.Services{
		Gallery:       services.NewGalleryService(store, cfg.ClusterRadius),
		Submissions:   services.NewSubmissionService(store, notifier),
		Contributions: services.NewContributionService(store),
		Moderation:    moderation,
		Access:        access,
	}
	if cfg.OAuthClientID != "" {
		svc.Identity = oauth.NewProvider(cfg)
	} else {
		slog.Info("OAUTH_CLIENT_ID not set, sign-in is disabled")
	}

	gin.SetMode(gin.ReleaseMode)
	app.web = web.NewServer(cfg, svc)
	app.reminder = services.NewReviewReminder(store, notifier, cfg.ReviewReminderInterval)

	if app.discord != nil {
		router := commands.NewRouter(cfg.DiscordGuildID)
		commands.Register(router, &commands.BotHandler{Service: moderation}, access)
		app.discord.AddHandler(commands.ReadyHandler)
		app.discord.AddHandler(router.HandleFunc())
	}

	return app, nil
}

func (a *App) Run() error {
	a.startMetricsServer()
	a.web.Start()

	if a.discord != nil {
		if err := a.discord.Open(); err != nil {
			slog.Error("Failed to open discord session", "error", err)
			return err
		}

		botID := a.discord.State.User.ID
		a.registeredCommands = commands.RegisterCommands(a.discord, commands.GetApplicationCommands(), botID, a.config.DiscordGuildID)
	}

	a.reminderCtx, a.reminderCancel = context.WithCancel(context.Background())
	go a.reminder.Start(a.reminderCtx)

	slog.Info("Fabled Galaxy is online!", "addr", a.config.HTTPAddr)
	return nil
}

type pinger interface {
	Ping(ctx context.Context) error
}

const readinessTimeout = 2 * time.Second

// operatorHandler serves /metrics and /readyz on the internal port.
// Readiness fails while the database is unreachable.
func (a *App) operatorHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		p, ok := a.store.(pinger)
		if !ok {
			w.WriteHeader(http.StatusOK)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			slog.Warn("Readiness check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func (a *App) startMetricsServer() {
	a.metricsServer = &http.Server{
		Addr:              a.config.MetricsAddr,
		Handler:           a.operatorHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("Metrics server listening", "addr", a.metricsServer.Addr)
		if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", "error", err)
		}
	}()
}

func (a *App) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down...")
	var errs []error

	if a.reminderCancel != nil {
		a.reminderCancel()
	}

	if a.web != nil {
		if err := a.web.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
		}
	}

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown metrics server: %w", err))
		}
	}

	if a.discord != nil {
		if a.discord.State != nil && a.discord.State.User != nil {
			commands.CleanupCommands(a.discord, a.registeredCommands, a.discord.State.User.ID, a.config.DiscordGuildID)
		}
		if err := a.discord.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close discord session: %w", err))
		}
	}

	if a.store != nil {
		a.store.Close()
	}

	return errors.Join(errs...)
}
