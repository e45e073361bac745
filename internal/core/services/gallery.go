package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/ports"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/galaxymap"
)

// GalleryService serves the public view: approved worlds only.
type GalleryService struct {
	repo          ports.WorldRepository
	clusterRadius float64
}

func NewGalleryService(repo ports.WorldRepository, clusterRadius float64) *GalleryService {
	if clusterRadius <= 0 {
		clusterRadius = galaxymap.DefaultClusterRadius
	}
	return &GalleryService{repo: repo, clusterRadius: clusterRadius}
}

// List returns approved worlds, newest first, narrowed by f.
func (s *GalleryService) List(ctx context.Context, f domain.Filter) ([]domain.WorldRecord, error) {
	worlds, err := s.repo.ListWorlds(ctx, domain.StatusApproved, false)
	if err != nil {
		return nil, fmt.Errorf("list approved worlds: %w", err)
	}
	return f.Apply(worlds), nil
}

// Get returns the approved world with the given id, or nil when there is none.
func (s *GalleryService) Get(ctx context.Context, id string) (*domain.WorldRecord, error) {
	w, err := s.repo.GetWorld(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get world: %w", err)
	}
	if w.Status != domain.StatusApproved {
		return nil, nil
	}
	return w, nil
}

func (s *GalleryService) Stats(ctx context.Context) (domain.Stats, error) {
	worlds, err := s.repo.ListWorlds(ctx, domain.StatusApproved, false)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("list approved worlds: %w", err)
	}
	return domain.ComputeStats(worlds), nil
}

// Map lays out the filtered approved worlds for the given viewport.
func (s *GalleryService) Map(ctx context.Context, f domain.Filter, view galaxymap.Viewport) (galaxymap.Scene, error) {
	worlds, err := s.List(ctx, f)
	if err != nil {
		return galaxymap.Scene{}, err
	}
	return galaxymap.Layout(worlds, view, s.clusterRadius), nil
}
