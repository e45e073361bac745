package galaxymap

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"
)

func TestDebouncer_RunsLastCallOnly(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls atomic.Int32
	var last atomic.Int32

	for i := 1; i <= 5; i++ {
		i := i
		d.Trigger(func() {
			calls.Add(1)
			last.Store(int32(i))
		})
	}

	time.Sleep(80 * time.Millisecond)
	if calls.Load() != 1 || last.Load() != 5 {
		t.Errorf("calls = %d, last = %d; want 1 call with 5", calls.Load(), last.Load())
	}
}

func TestDebouncer_Stop(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(40 * time.Millisecond)
	if calls.Load() != 0 {
		t.Error("stopped debouncer still fired")
	}
}

func sampleRecords() []domain.WorldRecord {
	a := world("a", 20, 20)
	a.Name = "Luminos Prime"
	b := world("b", 80, 80)
	b.Name = "Ashfall"
	b.Type = domain.TypeVolcanic
	return []domain.WorldRecord{a, b}
}

func TestSession_FiltersRerender(t *testing.T) {
	scenes := make(chan Scene, 10)
	s := NewSession(SessionOptions{
		Container: container,
		OnRender:  func(sc Scene) { scenes <- sc },
	})
	defer s.Close()

	s.SetRecords(sampleRecords())
	if sc := <-scenes; len(sc.Markers) != 2 {
		t.Fatalf("markers = %d, want 2", len(sc.Markers))
	}

	s.SetTypeFilter("volcanic")
	if sc := <-scenes; len(sc.Markers) != 1 || sc.Markers[0].ID != "b" {
		t.Fatalf("unexpected markers after type filter: %+v", sc.Markers)
	}

	s.SetTypeFilter("volcanic")
	select {
	case <-scenes:
		t.Error("unchanged filter triggered a render")
	default:
	}
}

func TestSession_SearchIsDebounced(t *testing.T) {
	scenes := make(chan Scene, 10)
	s := NewSession(SessionOptions{
		Container: container,
		Debounce:  20 * time.Millisecond,
		OnRender:  func(sc Scene) { scenes <- sc },
	})
	defer s.Close()

	s.SetRecords(sampleRecords())
	<-scenes

	s.SetSearch("l")
	s.SetSearch("lum")

	select {
	case sc := <-scenes:
		if len(sc.Markers) != 1 || sc.Markers[0].ID != "a" {
			t.Errorf("unexpected markers after search: %+v", sc.Markers)
		}
	case <-time.After(time.Second):
		t.Fatal("search never applied")
	}
	if s.Filter().Search != "lum" {
		t.Errorf("search = %q, want lum", s.Filter().Search)
	}

	select {
	case <-scenes:
		t.Error("superseded search still rendered")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestSession_InputAndClicks(t *testing.T) {
	var renders atomic.Int32
	s := NewSession(SessionOptions{
		Container: container,
		OnRender:  func(Scene) { renders.Add(1) },
	})
	defer s.Close()

	a := world("a", 40, 40)
	b := world("b", 42, 40)
	c := world("c", 80, 80)
	s.SetRecords([]domain.WorldRecord{a, b, c})

	if id, ok := s.ClickMarker("c"); !ok || id != "c" {
		t.Errorf("ClickMarker(c) = %q, %v", id, ok)
	}

	if _, ok := s.ClickMarker("cluster-a"); ok {
		t.Error("clicking a cluster should not open a world")
	}
	if z := s.Scene().Viewport.Zoom; z != 1.5 {
		t.Errorf("zoom after cluster click = %v, want 1.5", z)
	}

	if s.Input(func(d *Dispatcher) bool { return d.PointerDown(Point{1, 1}, TargetMarker) }) {
		t.Error("pointer down on marker should not re-render")
	}
	s.Input(func(d *Dispatcher) bool { return d.Reset() })
	if z := s.Scene().Viewport.Zoom; z != 1 {
		t.Errorf("zoom after reset = %v", z)
	}

	if renders.Load() != 3 {
		t.Errorf("renders = %d, want 3", renders.Load())
	}
}
