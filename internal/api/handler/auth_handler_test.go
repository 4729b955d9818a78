package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jeonseguard/community-api/internal/api/middleware"
	"github.com/jeonseguard/community-api/internal/core/domain"
	"github.com/jeonseguard/community-api/internal/core/ports"
)

type stubAuthService struct {
	loginResult *ports.LoginResult
	loginErr    error
	signupUser  *domain.User
	signupErr   error
}

func (s *stubAuthService) Signup(context.Context, string, string, string) (*domain.User, error) {
	return s.signupUser, s.signupErr
}

func (s *stubAuthService) Login(context.Context, string, string) (*ports.LoginResult, error) {
	return s.loginResult, s.loginErr
}

func (s *stubAuthService) Logout(context.Context, string) error { return nil }

func newAuthTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_SetsTokenPair(t *testing.T) {
	svc := &stubAuthService{loginResult: &ports.LoginResult{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		Username:     "alice",
		Role:         domain.RoleUser,
	}}
	h := NewAuthHandler(svc, 24*time.Hour)

	c, rec := newAuthTestContext(t, `{"username":"alice","password":"pass"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get(middleware.AccessHeader); got != "access-token" {
		t.Fatalf("access header not set, got %q", got)
	}

	var refreshCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.RefreshCookie {
			refreshCookie = cookie
		}
	}
	if refreshCookie == nil {
		t.Fatalf("refresh cookie not set")
	}
	if refreshCookie.Value != "refresh-token" {
		t.Fatalf("unexpected cookie value: %q", refreshCookie.Value)
	}
	if !refreshCookie.HttpOnly {
		t.Fatalf("refresh cookie must be HttpOnly")
	}
	if refreshCookie.Path != "/" {
		t.Fatalf("unexpected cookie path: %q", refreshCookie.Path)
	}
	if refreshCookie.MaxAge != int((24 * time.Hour).Seconds()) {
		t.Fatalf("unexpected cookie max-age: %d", refreshCookie.MaxAge)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["username"] != "alice" || body["role"] != domain.RoleUser {
		t.Fatalf("unexpected body: %v", body)
	}
	// Tokens travel in header and cookie only, never in the body.
	if _, ok := body["access_token"]; ok {
		t.Fatalf("access token leaked into response body")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	// The sentinel may arrive wrapped from lower layers; matching must
	// still hit the 401 branch.
	for _, loginErr := range []error{
		domain.ErrInvalidCredentials,
		fmt.Errorf("verify user: %w", domain.ErrInvalidCredentials),
	} {
		svc := &stubAuthService{loginErr: loginErr}
		h := NewAuthHandler(svc, time.Hour)

		c, rec := newAuthTestContext(t, `{"username":"alice","password":"wrong"}`)
		if err := h.Login(c); err != nil {
			t.Fatalf("Login returned error: %v", err)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	}
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	for _, body := range []string{`not json`, `{}`, `{"username":"alice"}`} {
		c, rec := newAuthTestContext(t, body)
		if err := h.Login(c); err != nil {
			t.Fatalf("Login returned error: %v", err)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("body %q: expected 401, got %d", body, rec.Code)
		}
	}
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	svc := &stubAuthService{signupUser: &domain.User{Username: "alice", Role: domain.RoleUser}}
	h := NewAuthHandler(svc, time.Hour)

	c, rec := newAuthTestContext(t, `{"username":"alice","email":"alice@example.com","password1":"longenough","password2":"longenough"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Signup_PasswordMismatch(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	c, _ := newAuthTestContext(t, `{"username":"alice","email":"alice@example.com","password1":"longenough","password2":"different1"}`)
	err := h.Signup(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", httpErr.Code)
	}
}
