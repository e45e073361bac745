package galaxymap

import "math"

// Target identifies what a pointer went down on.
type Target int

const (
	TargetBackground Target = iota
	TargetMarker
	TargetCluster
)

const DefaultPinchSensitivity = 0.01

type DispatcherOptions struct {
	ZoomStep         float64
	PinchSensitivity float64
	OnChange         func(Viewport)
}

// Dispatcher turns pointer, touch and wheel input into viewport transforms.
// Input coordinates are pixels relative to the map container. Out-of-range
// input is clamped and never reported as an error.
//
// A Dispatcher is not safe for concurrent use.
type Dispatcher struct {
	view      Viewport
	container Size

	zoomStep         float64
	pinchSensitivity float64
	onChange         func(Viewport)

	dragging  bool
	dragLast  Point
	pinching  bool
	pinchDist float64

	tooltip Tooltip
}

func NewDispatcher(container Size, opts DispatcherOptions) *Dispatcher {
	if opts.ZoomStep <= 0 {
		opts.ZoomStep = ZoomStep
	}
	if opts.PinchSensitivity <= 0 {
		opts.PinchSensitivity = DefaultPinchSensitivity
	}
	return &Dispatcher{
		view:             NewViewport(),
		container:        container,
		zoomStep:         opts.ZoomStep,
		pinchSensitivity: opts.PinchSensitivity,
		onChange:         opts.OnChange,
	}
}

func (d *Dispatcher) Viewport() Viewport { return d.view }
func (d *Dispatcher) Tooltip() Tooltip   { return d.tooltip }
func (d *Dispatcher) Dragging() bool     { return d.dragging }

func (d *Dispatcher) Resize(container Size) {
	d.container = container
}

func (d *Dispatcher) apply(next Viewport, changed bool) bool {
	if !changed {
		return false
	}
	d.view = next
	if d.onChange != nil {
		d.onChange(next)
	}
	return true
}

// toScreen converts a pixel position to container percentage.
func (d *Dispatcher) toScreen(px Point) Point {
	if d.container.Width <= 0 || d.container.Height <= 0 {
		return Point{worldCenter, worldCenter}
	}
	return Point{
		X: px.X / d.container.Width * WorldSize,
		Y: px.Y / d.container.Height * WorldSize,
	}
}

// Wheel zooms one step toward the cursor. Negative deltaY (scrolling up) zooms in.
func (d *Dispatcher) Wheel(deltaY float64, cursor Point) bool {
	if deltaY == 0 || !finite(deltaY) {
		return false
	}
	step := d.zoomStep
	if deltaY > 0 {
		step = -step
	}
	return d.apply(d.view.ZoomBy(step, d.toScreen(cursor)))
}

func (d *Dispatcher) ZoomIn() bool {
	return d.apply(d.view.SetZoom(d.view.Zoom + d.zoomStep))
}

func (d *Dispatcher) ZoomOut() bool {
	return d.apply(d.view.SetZoom(d.view.Zoom - d.zoomStep))
}

func (d *Dispatcher) Reset() bool {
	return d.apply(d.view.Reset())
}

// PointerDown starts a drag unless the pointer landed on a marker or cluster
// or the map is fully zoomed out.
func (d *Dispatcher) PointerDown(p Point, target Target) bool {
	if target != TargetBackground || d.view.Zoom <= MinZoom {
		d.dragging = false
		return false
	}
	d.dragging = true
	d.dragLast = p
	return true
}

func (d *Dispatcher) PointerMove(p Point) bool {
	if !d.dragging || d.container.Width <= 0 || d.container.Height <= 0 {
		return false
	}
	dx := (p.X - d.dragLast.X) / d.container.Width * WorldSize / d.view.Zoom
	dy := (p.Y - d.dragLast.Y) / d.container.Height * WorldSize / d.view.Zoom
	d.dragLast = p
	return d.apply(d.view.PanBy(dx, dy))
}

func (d *Dispatcher) PointerUp() {
	d.dragging = false
}

// TouchStart begins a drag for one finger or a pinch for two.
func (d *Dispatcher) TouchStart(touches []Point, target Target) bool {
	switch len(touches) {
	case 1:
		d.pinching = false
		return d.PointerDown(touches[0], target)
	case 2:
		d.dragging = false
		d.pinching = true
		d.pinchDist = distance(touches[0], touches[1])
		return true
	}
	return false
}

func (d *Dispatcher) TouchMove(touches []Point) bool {
	switch {
	case d.pinching && len(touches) == 2:
		dist := distance(touches[0], touches[1])
		delta := (dist - d.pinchDist) * d.pinchSensitivity
		d.pinchDist = dist
		mid := Point{(touches[0].X + touches[1].X) / 2, (touches[0].Y + touches[1].Y) / 2}
		return d.apply(d.view.ZoomBy(delta, d.toScreen(mid)))
	case d.dragging && len(touches) == 1:
		return d.PointerMove(touches[0])
	}
	return false
}

func (d *Dispatcher) TouchEnd() {
	d.dragging = false
	d.pinching = false
}

// MinimapClick centers the view on the world point under p, where p is a
// pixel position inside a minimap of the given size that shows the whole world.
func (d *Dispatcher) MinimapClick(p Point, minimap Size) bool {
	if minimap.Width <= 0 || minimap.Height <= 0 {
		return false
	}
	w := Point{
		X: clamp(p.X/minimap.Width*WorldSize, 0, WorldSize),
		Y: clamp(p.Y/minimap.Height*WorldSize, 0, WorldSize),
	}
	return d.apply(d.view.CenterOn(w))
}

// ClusterClick zooms one step in and centers on the cluster's centroid.
// Clicking a single marker does not change the view.
func (d *Dispatcher) ClusterClick(c Cluster) bool {
	if c.Count() < 2 {
		return false
	}
	next := Viewport{Zoom: math.Min(d.view.Zoom+d.zoomStep, MaxZoom), Pan: d.view.Pan}
	next, _ = next.CenterOn(c.Centroid)
	return d.apply(next, next != d.view)
}

// Hover shows tip next to the element occupying anchor.
func (d *Dispatcher) Hover(tip Tooltip, anchor Box, height float64) Tooltip {
	tip.Left, tip.Top, tip.Below = PlaceTooltip(anchor, height, d.container)
	tip.Visible = true
	d.tooltip = tip
	return tip
}

func (d *Dispatcher) Leave() {
	d.tooltip = Tooltip{}
}
