package main

import (
	"context"
	_ "embed"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/adapters/storage/postgres"

	"github.com/joho/godotenv"
)

//go:embed worlds.yaml
var defaultWorlds []byte

func main() {
	file := flag.String("file", "", "seed file (defaults to the bundled sample worlds)")
	grant := flag.String("grant-admin", "", "Discord user id to add as a moderator")
	revoke := flag.String("revoke-admin", "", "Discord user id to remove as a moderator")
	flag.Parse()

	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		slog.Error("DATABASE_URL is not set")
		os.Exit(1)
	}

	data := defaultWorlds
	if *file != "" {
		var err error
		if data, err = os.ReadFile(*file); err != nil {
			slog.Error("Failed to read seed file", "file", *file, "error", err)
			os.Exit(1)
		}
	}

	worlds, err := parseSeed(data, time.Now().UTC())
	if err != nil {
		slog.Error("Invalid seed file", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := postgres.NewPostgresStore(ctx, dbURL)
	if err != nil {
		slog.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		slog.Error("Failed to migrate schema", "error", err)
		return
	}

	for i := range worlds {
		if err := store.UpsertWorld(ctx, &worlds[i]); err != nil {
			slog.Error("Failed to seed world", "name", worlds[i].Name, "error", err)
			return
		}
	}
	slog.Info("Seeded worlds", "count", len(worlds))

	if *grant != "" {
		if err := store.AddAdmin(ctx, *grant); err != nil {
			slog.Error("Failed to add moderator", "user_id", *grant, "error", err)
			return
		}
		slog.Info("Moderator added", "user_id", *grant)
	}

	if *revoke != "" {
		if err := store.RemoveAdmin(ctx, *revoke); err != nil {
			slog.Error("Failed to remove moderator", "user_id", *revoke, "error", err)
			return
		}
		slog.Info("Moderator removed", "user_id", *revoke)
	}
}
