package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bemapp/orgadmin-shell/internal/core/domain"
	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

func TestSessionHandler_Login_Success(t *testing.T) {
	e := echo.New()
	budi := &domain.User{ID: 7, Name: "Budi", Roles: []string{domain.RoleMinister}}
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			if email != "budi@bem.ac.id" || password != "rahasia" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return budi, nil
		},
	}
	nav := &stubNavigation{view: ports.NavigationView{
		Authenticated: true,
		PrimaryRole:   domain.RoleMinister,
		LandingScreen: domain.ScreenDashboard,
	}}
	handler := NewSessionHandler(stub, nav)

	body := strings.NewReader(`{"email":"budi@bem.ac.id","password":"rahasia"}`)
	req := httptest.NewRequest(http.MethodPost, "/session/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, _ := resp["user"].(map[string]any)
	navigation, _ := resp["navigation"].(map[string]any)
	if user["name"] != "Budi" || navigation["primary_role"] != domain.RoleMinister || navigation["landing_screen"] != "Dashboard" {
		t.Fatalf("unexpected payload: %s", rec.Body.String())
	}
}

func TestSessionHandler_Login_ReturnsAuthError(t *testing.T) {
	e := echo.New()
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return nil, &domain.AuthError{Message: "Invalid credentials", Err: domain.ErrInvalidCredentials}
		},
	}
	handler := NewSessionHandler(stub, &stubNavigation{})

	req := httptest.NewRequest(http.MethodPost, "/session/login", strings.NewReader(`{"email":"a@b.c","password":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	if err == nil || err.Error() != "Invalid credentials" {
		t.Fatalf("expected auth error to propagate, got %v", err)
	}
}

func TestSessionHandler_Login_BadPayload(t *testing.T) {
	e := echo.New()
	handler := NewSessionHandler(&stubSessionService{}, &stubNavigation{})

	req := httptest.NewRequest(http.MethodPost, "/session/login", strings.NewReader(`{"email":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Login(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSessionHandler_Logout_AlwaysNoContent(t *testing.T) {
	e := echo.New()
	stub := &stubSessionService{}
	handler := NewSessionHandler(stub, &stubNavigation{})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/session/logout", nil), rec)
		if err := handler.Logout(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	}
	if stub.logoutCalls != 2 {
		t.Fatalf("logout calls = %d", stub.logoutCalls)
	}
}

func TestSessionHandler_Get_Anonymous(t *testing.T) {
	e := echo.New()
	handler := NewSessionHandler(&stubSessionService{}, &stubNavigation{})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/session", nil), rec)
	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"authenticated":false}` {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
