package users

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	handler := NewHandler(NewService(NewMemoryRepo()))
	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(middleware.Auth())
	handler.RegisterRoutes(api)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRegisterLoginMe(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/register",
		`{"email":"jane@x.com","name":"Jane Doe","password":"hunter22xyz"}`, "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var registered struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &registered); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	if registered.Token == "" || registered.User.ID == "" {
		t.Fatalf("expected token and user id, got %s", resp.Body.String())
	}

	resp = doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"Jane@X.com","password":"hunter22xyz"}`, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var logged struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &logged); err != nil {
		t.Fatalf("decode login response: %v", err)
	}

	resp = doJSON(t, router, http.MethodGet, "/api/v1/auth/me", "", logged.Token)
	if resp.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var me struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &me); err != nil {
		t.Fatalf("decode me response: %v", err)
	}
	if me.ID != registered.User.ID || me.Email != "jane@x.com" {
		t.Fatalf("unexpected identity: %+v", me)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := newTestRouter(t)

	body := `{"email":"jane@x.com","name":"Jane","password":"hunter22xyz"}`
	if resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", body, ""); resp.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", resp.Code)
	}
	resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", body, "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "validation_error") {
		t.Fatalf("expected validation_error code, got %s", resp.Body.String())
	}
}

func TestRegisterValidation(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"name":"Jane","password":"hunter22xyz"}`},
		{"bad email", `{"email":"not-an-email","password":"hunter22xyz"}`},
		{"short password", `{"email":"jane@x.com","password":"short"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", tc.body, "")
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
			}
		})
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	if resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/register",
		`{"email":"jane@x.com","password":"hunter22xyz"}`, ""); resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.Code)
	}

	resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"jane@x.com","password":"wrong-password"}`, "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", resp.Code)
	}

	resp = doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"nobody@x.com","password":"hunter22xyz"}`, "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("unknown email: expected 401, got %d", resp.Code)
	}
}

func TestMeRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", "", "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
}
