package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jeonseguard/community-api/internal/core/domain"
)

func runRBAC(t *testing.T, principal *domain.Principal, allowed ...string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set(PrincipalKey, *principal)
	}

	handler := RequireAuthority(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, handler(c)
}

func TestRequireAuthority_Allowed(t *testing.T) {
	rec, err := runRBAC(t, &domain.Principal{Username: "alice", Role: domain.RoleUser}, "ROLE_USER", "ROLE_ADMIN")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAuthority_NoPrincipal(t *testing.T) {
	_, err := runRBAC(t, nil, "ROLE_USER")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", httpErr.Code)
	}
}

func TestRequireAuthority_WrongAuthority(t *testing.T) {
	rec, err := runRBAC(t, &domain.Principal{Username: "bob", Role: domain.RoleUser}, "ROLE_ADMIN")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
