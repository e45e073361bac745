package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/adapters/metrics"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/ports"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/textutil"

	"github.com/google/uuid"
)

const maxContributionLength = 2000

type ContributionInput struct {
	Section         string `json:"section"`
	Field           string `json:"field"`
	Content         string `json:"content"`
	ContributorName string `json:"contributor_name"`
}

type ContributionService struct {
	repo ports.WorldRepository
	now  func() time.Time
}

func NewContributionService(repo ports.WorldRepository) *ContributionService {
	return &ContributionService{repo: repo, now: time.Now}
}

// Add appends a contribution to an approved world that is open for
// collaboration. Contributions are never edited or removed afterwards.
func (s *ContributionService) Add(ctx context.Context, worldID string, in ContributionInput, user *domain.User) (*domain.Contribution, error) {
	content := textutil.StripHTML(in.Content)
	field := strings.TrimSpace(in.Field)

	switch {
	case content == "":
		return nil, domain.NewValidationError(0, "content", "required")
	case len([]rune(content)) > maxContributionLength:
		return nil, domain.NewValidationError(0, "content", "too long")
	case !domain.IsLoreKey(field):
		return nil, domain.NewValidationError(0, "field", "not a lore field")
	}

	w, err := s.repo.GetWorld(ctx, worldID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get world: %w", err)
	}
	if w.Status != domain.StatusApproved {
		return nil, domain.ErrNotFound
	}
	if !w.IsOpenForCollaboration() {
		return nil, domain.ErrNotCollaborative
	}

	name := textutil.StripHTML(in.ContributorName)
	if name == "" && user != nil {
		name = user.DisplayName
	}
	if name == "" {
		name = domain.DefaultContributorName
	}

	c := domain.Contribution{
		ID:              uuid.NewString(),
		Section:         strings.TrimSpace(in.Section),
		Field:           field,
		Content:         content,
		ContributorName: name,
		CreatedAt:       s.now().UTC(),
	}

	if err := s.repo.AppendContribution(ctx, worldID, c); err != nil {
		return nil, fmt.Errorf("append contribution: %w", err)
	}
	metrics.ContributionsAdded.Inc()
	slog.Info("Contribution added", "world_id", worldID, "field", field)
	return &c, nil
}
