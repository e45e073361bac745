package galaxymap

import (
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"
)

type MarkerKind string

const (
	KindWorld   MarkerKind = "world"
	KindCluster MarkerKind = "cluster"
)

// Marker is one drawable element of the map: a single world or an aggregate.
type Marker struct {
	ID      string           `json:"id"`
	Kind    MarkerKind       `json:"kind"`
	Count   int              `json:"count"`
	IDs     []string         `json:"ids"`
	Name    string           `json:"name"`
	Type    domain.WorldType `json:"type,omitempty"`
	Emoji   string           `json:"emoji"`
	Color   domain.Color     `json:"color"`
	World   Point            `json:"world"`
	Screen  Point            `json:"screen"`
	Visible bool             `json:"visible"`
	Tooltip Tooltip          `json:"tooltip"`
}

type Minimap struct {
	View Rect    `json:"view"`
	Dots []Point `json:"dots"`
}

type Scene struct {
	Viewport Viewport `json:"viewport"`
	Markers  []Marker `json:"markers"`
	Minimap  Minimap  `json:"minimap"`
	Total    int      `json:"total"`
}

// Layout clusters records at the viewport's zoom and places each cluster in
// container percentage coordinates.
func Layout(records []domain.WorldRecord, view Viewport, radius float64) Scene {
	view = view.Normalize()
	clusters := Group(records, view.Zoom, radius)

	scene := Scene{
		Viewport: view,
		Markers:  make([]Marker, 0, len(clusters)),
		Minimap: Minimap{
			View: view.VisibleBounds(),
			Dots: make([]Point, 0, len(records)),
		},
		Total: len(records),
	}

	for i := range records {
		scene.Minimap.Dots = append(scene.Minimap.Dots, positionOf(&records[i]))
	}

	for _, c := range clusters {
		scene.Markers = append(scene.Markers, markerFor(c, view))
	}
	return scene
}

func markerFor(c Cluster, view Viewport) Marker {
	screen := view.WorldToScreen(c.Centroid)
	m := Marker{
		Count:   c.Count(),
		IDs:     c.IDs(),
		Color:   c.Color,
		World:   c.Centroid,
		Screen:  screen,
		Visible: Rect{Max: Point{WorldSize, WorldSize}}.Contains(screen),
		Tooltip: ClusterTooltip(c),
	}

	if c.IsSingleton() {
		w := &c.Members[0]
		m.ID = w.ID
		m.Kind = KindWorld
		m.Name = w.Name
		m.Type = w.Type
		m.Emoji = w.Type.Info().Emoji
		return m
	}

	m.ID = "cluster-" + c.Members[0].ID
	m.Kind = KindCluster
	m.Name = m.Tooltip.Title
	m.Emoji = m.Tooltip.Emoji
	return m
}

// Find returns the marker with the given id.
func (s Scene) Find(id string) (Marker, bool) {
	for _, m := range s.Markers {
		if m.ID == id {
			return m, true
		}
	}
	return Marker{}, false
}
