package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/adapters/metrics"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/ports"
)

// ReviewReminder periodically nudges moderators while worlds await review.
type ReviewReminder struct {
	repo     ports.WorldRepository
	notifier ports.NotificationService
	interval time.Duration
}

func NewReviewReminder(repo ports.WorldRepository, notifier ports.NotificationService, interval time.Duration) *ReviewReminder {
	return &ReviewReminder{repo: repo, notifier: notifier, interval: interval}
}

func (r *ReviewReminder) Start(ctx context.Context) {
	if r.interval <= 0 {
		slog.Info("Review reminder disabled")
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	slog.Info("Review reminder started", "interval", r.interval)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.check(ctx)
		}
	}
}

func (r *ReviewReminder) check(ctx context.Context) {
	pending, err := r.repo.CountWorlds(ctx, domain.StatusPending)
	if err != nil {
		slog.Error("Failed to count pending worlds", "error", err)
		return
	}
	metrics.PendingWorlds.Set(float64(pending))

	if pending == 0 {
		return
	}
	if err := r.notifier.SendReminder(ctx, pending); err != nil {
		slog.Error("Failed to send review reminder", "pending", pending, "error", err)
	}
}
