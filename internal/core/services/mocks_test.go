package services

import (
	"context"
	"sort"
	"sync"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"
)

type mockRepository struct {
	insertWorldFunc        func(ctx context.Context, w *domain.WorldRecord) error
	getWorldFunc           func(ctx context.Context, id string) (*domain.WorldRecord, error)
	listWorldsFunc         func(ctx context.Context, status domain.Status, ascending bool) ([]domain.WorldRecord, error)
	countWorldsFunc        func(ctx context.Context, status domain.Status) (int, error)
	setStatusFunc          func(ctx context.Context, id string, status domain.Status) (*domain.WorldRecord, error)
	deleteWorldFunc        func(ctx context.Context, id string) error
	appendContributionFunc func(ctx context.Context, worldID string, c domain.Contribution) error
	upsertWorldFunc        func(ctx context.Context, w *domain.WorldRecord) error
}

func (m *mockRepository) InsertWorld(ctx context.Context, w *domain.WorldRecord) error {
	if m.insertWorldFunc != nil {
		return m.insertWorldFunc(ctx, w)
	}
	return nil
}

func (m *mockRepository) GetWorld(ctx context.Context, id string) (*domain.WorldRecord, error) {
	if m.getWorldFunc != nil {
		return m.getWorldFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockRepository) ListWorlds(ctx context.Context, status domain.Status, ascending bool) ([]domain.WorldRecord, error) {
	if m.listWorldsFunc != nil {
		return m.listWorldsFunc(ctx, status, ascending)
	}
	return nil, nil
}

func (m *mockRepository) CountWorlds(ctx context.Context, status domain.Status) (int, error) {
	if m.countWorldsFunc != nil {
		return m.countWorldsFunc(ctx, status)
	}
	return 0, nil
}

func (m *mockRepository) SetStatus(ctx context.Context, id string, status domain.Status) (*domain.WorldRecord, error) {
	if m.setStatusFunc != nil {
		return m.setStatusFunc(ctx, id, status)
	}
	return &domain.WorldRecord{ID: id, Status: status}, nil
}

func (m *mockRepository) DeleteWorld(ctx context.Context, id string) error {
	if m.deleteWorldFunc != nil {
		return m.deleteWorldFunc(ctx, id)
	}
	return nil
}

func (m *mockRepository) AppendContribution(ctx context.Context, worldID string, c domain.Contribution) error {
	if m.appendContributionFunc != nil {
		return m.appendContributionFunc(ctx, worldID, c)
	}
	return nil
}

func (m *mockRepository) UpsertWorld(ctx context.Context, w *domain.WorldRecord) error {
	if m.upsertWorldFunc != nil {
		return m.upsertWorldFunc(ctx, w)
	}
	return nil
}

func (m *mockRepository) Close() {}

// memoryRepository keeps worlds in a map for flow tests.
type memoryRepository struct {
	mu     sync.Mutex
	worlds map[string]domain.WorldRecord
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{worlds: make(map[string]domain.WorldRecord)}
}

func (m *memoryRepository) InsertWorld(_ context.Context, w *domain.WorldRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.worlds[w.ID] = *w
	return nil
}

func (m *memoryRepository) GetWorld(_ context.Context, id string) (*domain.WorldRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.worlds[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &w, nil
}

func (m *memoryRepository) ListWorlds(_ context.Context, status domain.Status, ascending bool) ([]domain.WorldRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.WorldRecord
	for _, w := range m.worlds {
		if w.Status == status {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if ascending {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memoryRepository) CountWorlds(ctx context.Context, status domain.Status) (int, error) {
	worlds, _ := m.ListWorlds(ctx, status, true)
	return len(worlds), nil
}

func (m *memoryRepository) SetStatus(_ context.Context, id string, status domain.Status) (*domain.WorldRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.worlds[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if !w.Status.CanTransition(status) {
		return nil, domain.ErrAlreadyModerated
	}
	w.Status = status
	m.worlds[id] = w
	return &w, nil
}

func (m *memoryRepository) DeleteWorld(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.worlds[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.worlds, id)
	return nil
}

func (m *memoryRepository) AppendContribution(_ context.Context, worldID string, c domain.Contribution) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.worlds[worldID]
	if !ok {
		return domain.ErrNotFound
	}
	w.Contributions = append(w.Contributions, c)
	m.worlds[worldID] = w
	return nil
}

func (m *memoryRepository) UpsertWorld(ctx context.Context, w *domain.WorldRecord) error {
	return m.InsertWorld(ctx, w)
}

func (m *memoryRepository) Close() {}

type mockNotifier struct {
	submissions []string
	decisions   []domain.Status
	deleted     []string
	reminders   []int
	err         error
}

func (m *mockNotifier) NotifySubmission(_ context.Context, w *domain.WorldRecord) error {
	m.submissions = append(m.submissions, w.ID)
	return m.err
}

func (m *mockNotifier) NotifyDecision(_ context.Context, w *domain.WorldRecord, _ string) error {
	m.decisions = append(m.decisions, w.Status)
	return m.err
}

func (m *mockNotifier) NotifyDeleted(_ context.Context, id, _ string) error {
	m.deleted = append(m.deleted, id)
	return m.err
}

func (m *mockNotifier) SendReminder(_ context.Context, pending int) error {
	m.reminders = append(m.reminders, pending)
	return m.err
}

type mockAuthorizer struct {
	admins map[string]bool
	err    error
}

func (m *mockAuthorizer) IsAdmin(_ context.Context, userID string) (bool, error) {
	return m.admins[userID], m.err
}
