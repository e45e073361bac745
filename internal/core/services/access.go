package services

import (
	"context"
	"fmt"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/ports"
)

// AccessService answers the moderator check. Bootstrap ids from configuration
// are always moderators; everyone else is looked up in the store.
type AccessService struct {
	authz     ports.Authorizer
	bootstrap map[string]struct{}
}

func NewAccessService(authz ports.Authorizer, bootstrapIDs []string) *AccessService {
	ids := make(map[string]struct{}, len(bootstrapIDs))
	for _, id := range bootstrapIDs {
		if id != "" {
			ids[id] = struct{}{}
		}
	}
	return &AccessService{authz: authz, bootstrap: ids}
}

func (s *AccessService) IsModerator(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	if _, ok := s.bootstrap[userID]; ok {
		return true, nil
	}
	if s.authz == nil {
		return false, nil
	}
	ok, err := s.authz.IsAdmin(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("check admin: %w", err)
	}
	return ok, nil
}

// RequireModerator returns ErrUnauthenticated for a missing user and
// ErrForbidden for a user without the moderator role.
func (s *AccessService) RequireModerator(ctx context.Context, user *domain.User) error {
	if user == nil || user.ID == "" {
		return domain.ErrUnauthenticated
	}
	ok, err := s.IsModerator(ctx, user.ID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}
