package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/adapters/metrics"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/ports"

	"github.com/google/uuid"
)

type ModerationService struct {
	repo     ports.WorldRepository
	access   *AccessService
	notifier ports.NotificationService
}

func NewModerationService(repo ports.WorldRepository, access *AccessService, notifier ports.NotificationService) *ModerationService {
	return &ModerationService{repo: repo, access: access, notifier: notifier}
}

// Pending lists the review queue, oldest first.
func (s *ModerationService) Pending(ctx context.Context, mod *domain.User) ([]domain.WorldRecord, error) {
	if err := s.access.RequireModerator(ctx, mod); err != nil {
		return nil, err
	}
	worlds, err := s.repo.ListWorlds(ctx, domain.StatusPending, true)
	if err != nil {
		return nil, fmt.Errorf("list pending worlds: %w", err)
	}
	return worlds, nil
}

func (s *ModerationService) Approve(ctx context.Context, mod *domain.User, id string) (*domain.WorldRecord, error) {
	return s.decide(ctx, mod, id, domain.StatusApproved)
}

func (s *ModerationService) Reject(ctx context.Context, mod *domain.User, id string) (*domain.WorldRecord, error) {
	return s.decide(ctx, mod, id, domain.StatusRejected)
}

func (s *ModerationService) decide(ctx context.Context, mod *domain.User, id string, status domain.Status) (*domain.WorldRecord, error) {
	if err := s.access.RequireModerator(ctx, mod); err != nil {
		return nil, err
	}

	w, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrAlreadyModerated) {
			return nil, err
		}
		return nil, fmt.Errorf("set status: %w", err)
	}

	metrics.ModerationDecisions.WithLabelValues(string(status)).Inc()
	slog.Info("World moderated", "world_id", id, "status", status, "moderator", mod.ID)

	if s.notifier != nil {
		if err := s.notifier.NotifyDecision(ctx, w, mod.DisplayName); err != nil {
			slog.Warn("Failed to send moderation notice", "world_id", id, "error", err)
		}
	}
	return w, nil
}

func (s *ModerationService) Delete(ctx context.Context, mod *domain.User, id string) error {
	if err := s.access.RequireModerator(ctx, mod); err != nil {
		return err
	}
	if err := s.repo.DeleteWorld(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete world: %w", err)
	}

	metrics.ModerationDecisions.WithLabelValues("deleted").Inc()
	slog.Info("World deleted", "world_id", id, "moderator", mod.ID)

	if s.notifier != nil {
		if err := s.notifier.NotifyDeleted(ctx, id, mod.DisplayName); err != nil {
			slog.Warn("Failed to send deletion notice", "world_id", id, "error", err)
		}
	}
	return nil
}

// ExportFilename is the download name for an export taken at t.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("fabled-galaxy-export-%s.json", t.UTC().Format("2006-01-02"))
}

// Export returns every approved world, newest first.
func (s *ModerationService) Export(ctx context.Context, mod *domain.User) ([]domain.WorldRecord, error) {
	if err := s.access.RequireModerator(ctx, mod); err != nil {
		return nil, err
	}
	worlds, err := s.repo.ListWorlds(ctx, domain.StatusApproved, false)
	if err != nil {
		return nil, fmt.Errorf("list approved worlds: %w", err)
	}
	return worlds, nil
}

// Import upserts worlds from an export. Missing ids, layout or status are
// filled in; imported worlds without a valid status stay pending.
func (s *ModerationService) Import(ctx context.Context, mod *domain.User, worlds []domain.WorldRecord) (int, error) {
	if err := s.access.RequireModerator(ctx, mod); err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	for i := range worlds {
		w := &worlds[i]
		if w.ID == "" {
			w.ID = uuid.NewString()
		}
		if !w.Status.Valid() {
			w.Status = domain.StatusPending
		}
		if !w.Type.Valid() {
			w.Type = domain.TypeUnknown
		}
		pos, color := domain.DeriveLayout(w.ID)
		if w.Position == (domain.Position{}) {
			w.Position = pos
		}
		if !w.Color.Valid() {
			w.Color = color
		}
		if w.CreatedAt.IsZero() {
			w.CreatedAt = now
		}
		w.UpdatedAt = now

		existing, err := s.repo.GetWorld(ctx, w.ID)
		switch {
		case err == nil:
			*w = existing.Reimport(*w)
		case !errors.Is(err, domain.ErrNotFound):
			return i, fmt.Errorf("import world %s: %w", w.ID, err)
		}

		if err := s.repo.UpsertWorld(ctx, w); err != nil {
			return i, fmt.Errorf("import world %s: %w", w.ID, err)
		}
	}

	slog.Info("Worlds imported", "count", len(worlds), "moderator", mod.ID)
	return len(worlds), nil
}
