package ports

import (
	"context"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"
)

type WorldRepository interface {
	InsertWorld(ctx context.Context, w *domain.WorldRecord) error
	GetWorld(ctx context.Context, id string) (*domain.WorldRecord, error)
	ListWorlds(ctx context.Context, status domain.Status, ascending bool) ([]domain.WorldRecord, error)
	CountWorlds(ctx context.Context, status domain.Status) (int, error)
	// SetStatus moves a pending world to status. It returns ErrNotFound when the
	// id is unknown and ErrAlreadyModerated when the world has left pending.
	SetStatus(ctx context.Context, id string, status domain.Status) (*domain.WorldRecord, error)
	DeleteWorld(ctx context.Context, id string) error
	AppendContribution(ctx context.Context, worldID string, c domain.Contribution) error
	UpsertWorld(ctx context.Context, w *domain.WorldRecord) error
	Close()
}

type Authorizer interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*domain.User, error)
}

type NotificationService interface {
	NotifySubmission(ctx context.Context, w *domain.WorldRecord) error
	NotifyDecision(ctx context.Context, w *domain.WorldRecord, moderator string) error
	NotifyDeleted(ctx context.Context, id, moderator string) error
	SendReminder(ctx context.Context, pending int) error
}
