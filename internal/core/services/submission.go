package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/adapters/metrics"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/ports"

	"github.com/google/uuid"
)

type SubmissionService struct {
	repo     ports.WorldRepository
	notifier ports.NotificationService
	now      func() time.Time
	newID    func() string
}

func NewSubmissionService(repo ports.WorldRepository, notifier ports.NotificationService) *SubmissionService {
	return &SubmissionService{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Submit stores a new world in pending status. Anonymous submitters must
// leave an email address so they can be contacted about the review.
func (s *SubmissionService) Submit(ctx context.Context, p domain.SubmissionPayload, user *domain.User) (*domain.WorldRecord, error) {
	email := p.CreatorEmail
	if email == "" && user != nil {
		email = user.Email
	}
	if user == nil && email == "" {
		return nil, &domain.ValidationError{
			Step:   5,
			Field:  "creator_email",
			Fields: []string{"creator_email"},
			Reason: "sign in or provide an email address",
		}
	}

	attrs := p.Attributes
	if attrs.CreatorName == "" && user != nil {
		attrs.CreatorName = user.DisplayName
	}

	id := s.newID()
	pos, color := domain.DeriveLayout(id)
	now := s.now().UTC()

	w := &domain.WorldRecord{
		ID:           id,
		Name:         p.Name,
		Type:         p.Type,
		Description:  p.Description,
		Status:       domain.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
		CreatorEmail: email,
		Locked:       p.Locked,
		Attributes:   attrs,
		Position:     pos,
		Color:        color,
	}
	if user != nil {
		w.CreatedBy = user.ID
	}

	if err := s.repo.InsertWorld(ctx, w); err != nil {
		return nil, fmt.Errorf("insert world: %w", err)
	}
	metrics.WorldsSubmitted.Inc()
	slog.Info("World submitted", "world_id", w.ID, "name", w.Name, "created_by", w.CreatedBy)

	if s.notifier != nil {
		if err := s.notifier.NotifySubmission(ctx, w); err != nil {
			slog.Warn("Failed to notify moderators", "world_id", w.ID, "error", err)
		}
	}
	return w, nil
}
