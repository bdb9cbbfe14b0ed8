package authorization

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/casbin/casbin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Rahim00001/AuraStay-server/domain"
	application "github.com/Rahim00001/AuraStay-server/service"
)

type stubUserStore struct {
	users map[string]*domain.User
}

func (s *stubUserStore) GetAll(ctx context.Context) ([]*domain.User, error) { return nil, nil }
func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users[email], nil
}
func (s *stubUserStore) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.ID = primitive.NewObjectID()
	s.users[user.Email] = user
	return user, nil
}
func (s *stubUserStore) Replace(ctx context.Context, email string, user *domain.User) error {
	s.users[email] = user
	return nil
}
func (s *stubUserStore) UpdateRole(ctx context.Context, email string, update *domain.RoleUpdate) error {
	user, ok := s.users[email]
	if !ok {
		user = &domain.User{Email: email}
		s.users[email] = user
	}
	user.Role = update.Role
	user.Timestamp = time.Now()
	return nil
}
func (s *stubUserStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.users)), nil
}

func testGate(t *testing.T, users *stubUserStore) (*AccessGate, *application.SessionService) {
	t.Helper()

	sessions, err := application.NewSessionService([]byte("test-secret-key"), false, logrus.New())
	if err != nil {
		t.Fatalf("NewSessionService failed: %v", err)
	}

	enforcer, err := casbin.NewEnforcerSafe("../rbac_model.conf", "../policy.csv")
	if err != nil {
		t.Fatalf("NewEnforcerSafe failed: %v", err)
	}

	return NewAccessGate(sessions, users, enforcer, logrus.New()), sessions
}

func adminStatRequest(t *testing.T, sessions *application.SessionService, email string) *http.Request {
	t.Helper()
	req := httptest.NewRequest("GET", "/admin-stat", nil)
	if email != "" {
		token, err := sessions.Issue(email)
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		req.AddCookie(&http.Cookie{Name: application.SessionCookieName, Value: token})
	}
	return req
}

func TestRequireAuthRejectsMissingCookie(t *testing.T) {
	gate, _ := testGate(t, &stubUserStore{users: map[string]*domain.User{}})

	handlerRan := false
	chain := gate.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerRan = true
	}))

	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, httptest.NewRequest("GET", "/guest-stat", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if handlerRan {
		t.Error("handler must not run after a failing gate")
	}
}

func TestRequireAuthRejectsInvalidToken(t *testing.T) {
	gate, _ := testGate(t, &stubUserStore{users: map[string]*domain.User{}})

	chain := gate.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run")
	}))

	req := httptest.NewRequest("GET", "/guest-stat", nil)
	req.AddCookie(&http.Cookie{Name: application.SessionCookieName, Value: "garbage"})

	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAuthAttachesIdentity(t *testing.T) {
	gate, sessions := testGate(t, &stubUserStore{users: map[string]*domain.User{}})

	var gotEmail string
	chain := gate.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail, _ = IdentityFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, adminStatRequest(t, sessions, "a@x.com"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotEmail != "a@x.com" {
		t.Errorf("expected identity a@x.com in context, got %q", gotEmail)
	}
}

// A valid token is not enough: the directory entry decides, read fresh
// on every request.
func TestRequireRoleDeniesWithoutDirectoryEntry(t *testing.T) {
	gate, sessions := testGate(t, &stubUserStore{users: map[string]*domain.User{}})

	chain := gate.RequireAuth(gate.RequireRole(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run")
	})))

	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, adminStatRequest(t, sessions, "a@x.com"))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireRoleDeniesWrongRole(t *testing.T) {
	users := &stubUserStore{users: map[string]*domain.User{
		"a@x.com": {Email: "a@x.com", Role: domain.Guest},
	}}
	gate, sessions := testGate(t, users)

	chain := gate.RequireAuth(gate.RequireRole(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run")
	})))

	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, adminStatRequest(t, sessions, "a@x.com"))

	// role mismatch surfaces as 401, not 403
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	users := &stubUserStore{users: map[string]*domain.User{
		"a@x.com": {Email: "a@x.com", Role: domain.Admin},
	}}
	gate, sessions := testGate(t, users)

	handlerRan := false
	chain := gate.RequireAuth(gate.RequireRole(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerRan = true
	})))

	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, adminStatRequest(t, sessions, "a@x.com"))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !handlerRan {
		t.Error("expected handler to run")
	}
}

// Role changes take effect on the next request with the same token; no
// re-issuance is needed.
func TestRoleChangeTakesEffectImmediately(t *testing.T) {
	users := &stubUserStore{users: map[string]*domain.User{
		"a@x.com": {Email: "a@x.com", Role: domain.Guest},
	}}
	gate, sessions := testGate(t, users)

	chain := gate.RequireAuth(gate.RequireRole(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))

	token, err := sessions.Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	makeRequest := func() int {
		req := httptest.NewRequest("GET", "/admin-stat", nil)
		req.AddCookie(&http.Cookie{Name: application.SessionCookieName, Value: token})
		rec := httptest.NewRecorder()
		chain.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := makeRequest(); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before role change, got %d", code)
	}

	users.users["a@x.com"].Role = domain.Admin

	if code := makeRequest(); code != http.StatusOK {
		t.Errorf("expected 200 after role change with same token, got %d", code)
	}
}
