package galaxymap

import (
	"sync"
	"time"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"
)

type SessionOptions struct {
	Container        Size
	ClusterRadius    float64
	ZoomStep         float64
	PinchSensitivity float64
	Debounce         time.Duration
	OnRender         func(Scene)
}

// Session is the per-page map state: the loaded records, the active filter and
// the viewport. Every change that affects the layout produces a new Scene and
// hands it to OnRender. Free-text search is debounced.
type Session struct {
	mu         sync.Mutex
	records    []domain.WorldRecord
	filter     domain.Filter
	radius     float64
	dispatcher *Dispatcher
	search     *Debouncer
	onRender   func(Scene)
	scene      Scene
}

func NewSession(opts SessionOptions) *Session {
	if opts.ClusterRadius <= 0 {
		opts.ClusterRadius = DefaultClusterRadius
	}
	s := &Session{
		radius:   opts.ClusterRadius,
		search:   NewDebouncer(opts.Debounce),
		onRender: opts.OnRender,
		dispatcher: NewDispatcher(opts.Container, DispatcherOptions{
			ZoomStep:         opts.ZoomStep,
			PinchSensitivity: opts.PinchSensitivity,
		}),
	}
	s.scene = Layout(nil, s.dispatcher.Viewport(), s.radius)
	return s
}

func (s *Session) Scene() Scene {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scene
}

func (s *Session) Filter() domain.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *Session) SetRecords(records []domain.WorldRecord) {
	s.update(func() bool {
		s.records = records
		return true
	})
}

func (s *Session) SetTypeFilter(t string) {
	s.update(func() bool {
		changed := s.filter.Type != t
		s.filter.Type = t
		return changed
	})
}

func (s *Session) SetCollaborationFilter(c string) {
	s.update(func() bool {
		changed := s.filter.Collaboration != c
		s.filter.Collaboration = c
		return changed
	})
}

// SetSearch applies the search text after the debounce quiet period.
func (s *Session) SetSearch(q string) {
	s.search.Trigger(func() {
		s.update(func() bool {
			changed := s.filter.Search != q
			s.filter.Search = q
			return changed
		})
	})
}

// Input runs fn against the dispatcher and re-renders when it reports a
// viewport change.
func (s *Session) Input(fn func(d *Dispatcher) bool) bool {
	return s.update(func() bool {
		return fn(s.dispatcher)
	})
}

// ClickMarker handles a click on a rendered marker. Clusters zoom in; for a
// single world the id is returned so the caller can open its page.
func (s *Session) ClickMarker(id string) (worldID string, ok bool) {
	s.mu.Lock()
	m, found := s.scene.Find(id)
	s.mu.Unlock()
	if !found {
		return "", false
	}
	if m.Kind == KindWorld {
		return m.ID, true
	}

	s.update(func() bool {
		return s.dispatcher.ClusterClick(s.clusterFor(m))
	})
	return "", false
}

func (s *Session) clusterFor(m Marker) Cluster {
	ids := make(map[string]struct{}, len(m.IDs))
	for _, id := range m.IDs {
		ids[id] = struct{}{}
	}
	var members []domain.WorldRecord
	for i := range s.records {
		if _, ok := ids[s.records[i].ID]; ok {
			members = append(members, s.records[i])
		}
	}
	if len(members) == 0 {
		return Cluster{}
	}
	return newCluster(members)
}

func (s *Session) Close() {
	s.search.Stop()
}

func (s *Session) update(fn func() bool) bool {
	s.mu.Lock()
	if !fn() {
		s.mu.Unlock()
		return false
	}
	s.scene = Layout(s.filter.Apply(s.records), s.dispatcher.Viewport(), s.radius)
	scene, render := s.scene, s.onRender
	s.mu.Unlock()

	if render != nil {
		render(scene)
	}
	return true
}
