package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	application "github.com/Rahim00001/AuraStay-server/service"
)

func testAuthHandler(t *testing.T) (*AuthHandler, *application.SessionService) {
	t.Helper()
	sessions, err := application.NewSessionService([]byte("test-secret-key"), false, logrus.New())
	if err != nil {
		t.Fatalf("NewSessionService failed: %v", err)
	}
	tracer := trace.NewNoopTracerProvider().Tracer("")
	return NewAuthHandler(sessions, tracer, logrus.New()), sessions
}

func TestIssueTokenSetsSessionCookie(t *testing.T) {
	handler, sessions := testAuthHandler(t)

	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"email":"a@x.com"}`))
	rec := httptest.NewRecorder()
	handler.IssueToken(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Errorf("expected success body, got %s", rec.Body.String())
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != application.SessionCookieName {
		t.Fatalf("expected one session cookie, got %v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Error("session cookie must be httpOnly")
	}

	claims, err := sessions.Verify(cookies[0].Value)
	if err != nil {
		t.Fatalf("cookie token should verify: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("expected email a@x.com in claims, got %q", claims.Email)
	}
}

func TestIssueTokenRejectsMalformedBody(t *testing.T) {
	handler, _ := testAuthHandler(t)

	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	handler.IssueToken(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	handler, _ := testAuthHandler(t)

	req := httptest.NewRequest("GET", "/logout", nil)
	rec := httptest.NewRecorder()
	handler.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected clearing cookie, got %v", cookies)
	}
	if cookies[0].Value != "" || cookies[0].MaxAge >= 0 {
		t.Errorf("expected cleared cookie, got value %q maxAge %d", cookies[0].Value, cookies[0].MaxAge)
	}
}
