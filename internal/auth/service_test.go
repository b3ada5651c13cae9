package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bamdoliro/marugo/internal/rbac"
)

func newTestService() *AuthService {
	return NewAuthService("test-secret", 30*time.Minute, 24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	sub := uuid.New()

	tok, err := svc.IssueAccess(sub, "김마루", "user")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	claims, err := svc.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.Subject != sub.String() {
		t.Fatalf("subject = %s, want %s", claims.Subject, sub)
	}
	if claims.Name != "김마루" || claims.Role != "user" || claims.Kind != "access" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestRefreshTokenKind(t *testing.T) {
	svc := newTestService()
	tok, err := svc.IssueRefresh(uuid.New(), "김마루", "user")
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}
	claims, err := svc.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.Kind != "refresh" {
		t.Fatalf("kind = %s, want refresh", claims.Kind)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, err := newTestService().IssueAccess(uuid.New(), "x", "user")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	other := NewAuthService("different-secret", time.Minute, time.Minute)
	if _, err := other.Parse(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	svc := NewAuthService("test-secret", -time.Minute, -time.Minute)
	tok, err := svc.IssueAccess(uuid.New(), "x", "user")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if _, err := svc.Parse(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestJWTMiddlewarePutsSubjectAndRoleInContext(t *testing.T) {
	svc := newTestService()
	sub := uuid.New()
	tok, err := svc.IssueAccess(sub, "김마루", "admin")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	var gotSub uuid.UUID
	var gotRole string
	handler := JWTMiddleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSub, _ = SubjectFromContext(r.Context())
		gotRole = rbac.RoleFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/forms/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if gotSub != sub {
		t.Fatalf("subject = %s, want %s", gotSub, sub)
	}
	if gotRole != "admin" {
		t.Fatalf("role = %s, want admin", gotRole)
	}
}

func TestJWTMiddlewareRejectsRefreshTokens(t *testing.T) {
	svc := newTestService()
	tok, err := svc.IssueRefresh(uuid.New(), "김마루", "user")
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}

	handler := JWTMiddleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached with a refresh token")
	}))

	req := httptest.NewRequest("GET", "/forms/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rr.Code)
	}
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	handler := JWTMiddleware(newTestService())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached without a token")
	}))

	req := httptest.NewRequest("GET", "/forms/me", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rr.Code)
	}
}
