package web

import (
	"context"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/services"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/galaxymap"
)

type Gallery interface {
	List(ctx context.Context, f domain.Filter) ([]domain.WorldRecord, error)
	Get(ctx context.Context, id string) (*domain.WorldRecord, error)
	Stats(ctx context.Context) (domain.Stats, error)
	Map(ctx context.Context, f domain.Filter, view galaxymap.Viewport) (galaxymap.Scene, error)
}

type Submitter interface {
	Submit(ctx context.Context, p domain.SubmissionPayload, user *domain.User) (*domain.WorldRecord, error)
}

type Contributor interface {
	Add(ctx context.Context, worldID string, in services.ContributionInput, user *domain.User) (*domain.Contribution, error)
}

type Moderation interface {
	Pending(ctx context.Context, mod *domain.User) ([]domain.WorldRecord, error)
	Approve(ctx context.Context, mod *domain.User, id string) (*domain.WorldRecord, error)
	Reject(ctx context.Context, mod *domain.User, id string) (*domain.WorldRecord, error)
	Delete(ctx context.Context, mod *domain.User, id string) error
	Export(ctx context.Context, mod *domain.User) ([]domain.WorldRecord, error)
	Import(ctx context.Context, mod *domain.User, worlds []domain.WorldRecord) (int, error)
}

type ModeratorChecker interface {
	IsModerator(ctx context.Context, userID string) (bool, error)
}
