package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// seedNamespace keeps seeded ids stable across runs so re-seeding upserts.
var seedNamespace = uuid.MustParse("6f1c2b8e-3d4a-4c5e-9b7f-2a1d0e8c4b33")

type seedPosition struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type seedWorld struct {
	Name          string            `yaml:"name"`
	Type          string            `yaml:"type"`
	Description   string            `yaml:"description"`
	Creator       string            `yaml:"creator"`
	Collaboration string            `yaml:"collaboration"`
	Position      *seedPosition     `yaml:"position"`
	Color         string            `yaml:"color"`
	Fields        map[string]string `yaml:"fields"`
}

type seedFile struct {
	Worlds []seedWorld `yaml:"worlds"`
}

// parseSeed turns a seed file into approved worlds ready for upsert.
func parseSeed(data []byte, now time.Time) ([]domain.WorldRecord, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	worlds := make([]domain.WorldRecord, 0, len(f.Worlds))
	for i, sw := range f.Worlds {
		name := strings.TrimSpace(sw.Name)
		if name == "" {
			return nil, fmt.Errorf("seed world %d: name is required", i+1)
		}

		id := uuid.NewSHA1(seedNamespace, []byte(strings.ToLower(name))).String()
		pos, color := domain.DeriveLayout(id)
		if sw.Position != nil {
			pos = domain.Position{X: sw.Position.X, Y: sw.Position.Y}
		}
		if c := domain.Color(sw.Color); c.Valid() {
			color = c
		}

		attrs := domain.AttributesFromMap(sw.Fields)
		attrs.CreatorName = sw.Creator
		attrs.Collaboration = domain.CollaborationLocked
		if sw.Collaboration == string(domain.CollaborationOpen) {
			attrs.Collaboration = domain.CollaborationOpen
		}

		moderated := now
		worlds = append(worlds, domain.WorldRecord{
			ID:          id,
			Name:        name,
			Type:        domain.ParseWorldType(sw.Type),
			Description: sw.Description,
			Status:      domain.StatusApproved,
			CreatedAt:   now,
			UpdatedAt:   now,
			ModeratedAt: &moderated,
			Locked:      attrs.Collaboration == domain.CollaborationLocked,
			Attributes:  attrs,
			Position:    pos,
			Color:       color,
		})
	}
	return worlds, nil
}
