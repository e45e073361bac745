package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/config"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/services"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/galaxymap"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type mockGallery struct {
	listFunc  func(ctx context.Context, f domain.Filter) ([]domain.WorldRecord, error)
	getFunc   func(ctx context.Context, id string) (*domain.WorldRecord, error)
	statsFunc func(ctx context.Context) (domain.Stats, error)
	mapFunc   func(ctx context.Context, f domain.Filter, view galaxymap.Viewport) (galaxymap.Scene, error)
}

func (m *mockGallery) List(ctx context.Context, f domain.Filter) ([]domain.WorldRecord, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, f)
	}
	return nil, nil
}

func (m *mockGallery) Get(ctx context.Context, id string) (*domain.WorldRecord, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockGallery) Stats(ctx context.Context) (domain.Stats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx)
	}
	return domain.Stats{}, nil
}

func (m *mockGallery) Map(ctx context.Context, f domain.Filter, view galaxymap.Viewport) (galaxymap.Scene, error) {
	if m.mapFunc != nil {
		return m.mapFunc(ctx, f, view)
	}
	return galaxymap.Scene{}, nil
}

type mockSubmitter struct {
	submitFunc func(ctx context.Context, p domain.SubmissionPayload, user *domain.User) (*domain.WorldRecord, error)
}

func (m *mockSubmitter) Submit(ctx context.Context, p domain.SubmissionPayload, user *domain.User) (*domain.WorldRecord, error) {
	return m.submitFunc(ctx, p, user)
}

type mockContributor struct {
	addFunc func(ctx context.Context, worldID string, in services.ContributionInput, user *domain.User) (*domain.Contribution, error)
}

func (m *mockContributor) Add(ctx context.Context, worldID string, in services.ContributionInput, user *domain.User) (*domain.Contribution, error) {
	return m.addFunc(ctx, worldID, in, user)
}

type mockModeration struct {
	pendingFunc func(ctx context.Context, mod *domain.User) ([]domain.WorldRecord, error)
	approveFunc func(ctx context.Context, mod *domain.User, id string) (*domain.WorldRecord, error)
	rejectFunc  func(ctx context.Context, mod *domain.User, id string) (*domain.WorldRecord, error)
	deleteFunc  func(ctx context.Context, mod *domain.User, id string) error
	exportFunc  func(ctx context.Context, mod *domain.User) ([]domain.WorldRecord, error)
	importFunc  func(ctx context.Context, mod *domain.User, worlds []domain.WorldRecord) (int, error)
}

func (m *mockModeration) Pending(ctx context.Context, mod *domain.User) ([]domain.WorldRecord, error) {
	return m.pendingFunc(ctx, mod)
}

func (m *mockModeration) Approve(ctx context.Context, mod *domain.User, id string) (*domain.WorldRecord, error) {
	return m.approveFunc(ctx, mod, id)
}

func (m *mockModeration) Reject(ctx context.Context, mod *domain.User, id string) (*domain.WorldRecord, error) {
	return m.rejectFunc(ctx, mod, id)
}

func (m *mockModeration) Delete(ctx context.Context, mod *domain.User, id string) error {
	return m.deleteFunc(ctx, mod, id)
}

func (m *mockModeration) Export(ctx context.Context, mod *domain.User) ([]domain.WorldRecord, error) {
	return m.exportFunc(ctx, mod)
}

func (m *mockModeration) Import(ctx context.Context, mod *domain.User, worlds []domain.WorldRecord) (int, error) {
	return m.importFunc(ctx, mod, worlds)
}

type mockAccess struct {
	moderators map[string]bool
	err        error
}

func (m *mockAccess) IsModerator(_ context.Context, userID string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.moderators[userID], nil
}

type mockIdentity struct {
	exchangeFunc func(ctx context.Context, code string) (*domain.User, error)
}

func (m *mockIdentity) AuthCodeURL(state string) string {
	return "https://discord.test/authorize?state=" + state
}

func (m *mockIdentity) Exchange(ctx context.Context, code string) (*domain.User, error) {
	return m.exchangeFunc(ctx, code)
}

var (
	moderatorUser = &domain.User{ID: "mod-1", DisplayName: "Rey"}
	travelerUser  = &domain.User{ID: "user-1", DisplayName: "Kai", Email: "kai@example.com"}
)

func newTestServer(t *testing.T, svc Services) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if svc.Gallery == nil {
		svc.Gallery = &mockGallery{}
	}
	if svc.Access == nil {
		svc.Access = &mockAccess{moderators: map[string]bool{moderatorUser.ID: true}}
	}

	return NewServer(&config.Config{
		HTTPAddr:        ":0",
		SessionSecret:   testSecret,
		SessionTTL:      time.Hour,
		MaxImportWorlds: 2,
	}, svc)
}

func doRequest(t *testing.T, s *Server, method, path, body string, user *domain.User, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if user != nil {
		token, err := s.sessions.Issue(user)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func approvedWorld(id, name string) domain.WorldRecord {
	return domain.WorldRecord{
		ID:         id,
		Name:       name,
		Type:       domain.TypeOcean,
		Status:     domain.StatusApproved,
		Attributes: domain.Attributes{CreatorName: "Rey", Collaboration: domain.CollaborationOpen},
		Position:   domain.Position{X: 40, Y: 60},
		Color:      "#4a90d9",
	}
}
