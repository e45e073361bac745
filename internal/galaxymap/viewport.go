package galaxymap

import "math"

const (
	MinZoom  = 1.0
	MaxZoom  = 4.0
	ZoomStep = 0.5

	WorldSize   = 100.0
	worldCenter = WorldSize / 2
)

// Point is a coordinate in percentage units, either of the world or of the
// visible map container depending on context.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Rect struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Viewport is the zoom and pan state of the map. Values are immutable: every
// transform returns the next state together with whether anything changed.
//
// A world point w is shown at screen = 50 + Zoom*(w - 50 + Pan).
type Viewport struct {
	Zoom float64 `json:"zoom"`
	Pan  Point   `json:"pan"`
}

func NewViewport() Viewport {
	return Viewport{Zoom: MinZoom}
}

// MaxPan is the largest pan offset on either axis that keeps the view inside
// the [0,100] world square.
func (v Viewport) MaxPan() float64 {
	return maxPan(v.Zoom)
}

func maxPan(zoom float64) float64 {
	return (zoom - 1) * worldCenter / zoom
}

func (v Viewport) WorldToScreen(w Point) Point {
	return Point{
		X: worldCenter + v.Zoom*(w.X-worldCenter+v.Pan.X),
		Y: worldCenter + v.Zoom*(w.Y-worldCenter+v.Pan.Y),
	}
}

func (v Viewport) ScreenToWorld(s Point) Point {
	return Point{
		X: (s.X-worldCenter)/v.Zoom + worldCenter - v.Pan.X,
		Y: (s.Y-worldCenter)/v.Zoom + worldCenter - v.Pan.Y,
	}
}

// VisibleBounds returns the world rectangle currently shown in the container.
func (v Viewport) VisibleBounds() Rect {
	return Rect{
		Min: v.ScreenToWorld(Point{0, 0}),
		Max: v.ScreenToWorld(Point{WorldSize, WorldSize}),
	}
}

// SetZoom zooms around the center of the container.
func (v Viewport) SetZoom(z float64) (Viewport, bool) {
	return v.ZoomAt(z, Point{worldCenter, worldCenter})
}

// ZoomAt changes the zoom while keeping the world point under the screen
// point focus where it was. Zooming out near an edge may shift the view back
// inside the world.
func (v Viewport) ZoomAt(z float64, focus Point) (Viewport, bool) {
	if !finite(z) || !finite(focus.X) || !finite(focus.Y) {
		return v, false
	}
	z = clamp(z, MinZoom, MaxZoom)
	focus = Point{clamp(focus.X, 0, WorldSize), clamp(focus.Y, 0, WorldSize)}
	cur := v.Normalize()

	next := Viewport{
		Zoom: z,
		Pan: Point{
			X: cur.Pan.X + (focus.X-worldCenter)*(1/z-1/cur.Zoom),
			Y: cur.Pan.Y + (focus.Y-worldCenter)*(1/z-1/cur.Zoom),
		},
	}
	next = next.clampPan()
	return next, next != v
}

func (v Viewport) ZoomBy(delta float64, focus Point) (Viewport, bool) {
	return v.ZoomAt(v.Normalize().Zoom+delta, focus)
}

// PanBy shifts the view by a delta in world percentage units.
func (v Viewport) PanBy(dx, dy float64) (Viewport, bool) {
	if !finite(dx) || !finite(dy) {
		return v, false
	}
	cur := v.Normalize()
	next := Viewport{Zoom: cur.Zoom, Pan: Point{cur.Pan.X + dx, cur.Pan.Y + dy}}.clampPan()
	return next, next != v
}

// CenterOn pans so that the world point w sits in the middle of the container,
// as far as the bounds allow.
func (v Viewport) CenterOn(w Point) (Viewport, bool) {
	if !finite(w.X) || !finite(w.Y) {
		return v, false
	}
	next := Viewport{Zoom: v.Zoom, Pan: Point{worldCenter - w.X, worldCenter - w.Y}}.clampPan()
	return next, next != v
}

func (v Viewport) Reset() (Viewport, bool) {
	next := NewViewport()
	return next, next != v
}

func (v Viewport) clampPan() Viewport {
	if !finite(v.Zoom) {
		v.Zoom = MinZoom
	}
	v.Zoom = clamp(v.Zoom, MinZoom, MaxZoom)
	m := maxPan(v.Zoom)
	v.Pan.X = clamp(v.Pan.X, -m, m)
	v.Pan.Y = clamp(v.Pan.Y, -m, m)
	return v
}

// Normalize returns v with zoom and pan forced into their bounds.
func (v Viewport) Normalize() Viewport {
	if !finite(v.Pan.X) {
		v.Pan.X = 0
	}
	if !finite(v.Pan.Y) {
		v.Pan.Y = 0
	}
	return v.clampPan()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
