package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resume-builder/internal/shared/config"
	"resume-builder/resume/model"
)

func buildTestApp(t *testing.T) *App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	app, err := Build(config.Config{
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if app.DB != nil {
		t.Fatalf("expected in-memory repositories without DATABASE_URL")
	}
	return app
}

func request(t *testing.T, app *App, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	return resp
}

func registerUser(t *testing.T, app *App, email string) string {
	t.Helper()
	resp := request(t, app, http.MethodPost, "/api/v1/auth/register",
		`{"email":"`+email+`","name":"Test User","password":"hunter22xyz"}`, "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d: %s", email, resp.Code, resp.Body.String())
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode register: %v", err)
	}
	return body.Token
}

func TestHealthIsPublic(t *testing.T) {
	app := buildTestApp(t)

	resp := request(t, app, http.MethodGet, "/api/v1/health", "", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestResumesRequireAuth(t *testing.T) {
	app := buildTestApp(t)

	resp := request(t, app, http.MethodGet, "/api/v1/resumes", "", "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "unauthorized") {
		t.Fatalf("expected error envelope, got %s", resp.Body.String())
	}
}

func TestWizardToPreviewFlow(t *testing.T) {
	app := buildTestApp(t)
	owner := registerUser(t, app, "jane@x.com")
	other := registerUser(t, app, "other@x.com")

	wizard := `{"steps": [
		{"section": "template", "value": "professional"},
		{"section": "personalInfo", "value": {"firstName": "Jane", "lastName": "Doe", "email": "jane@x.com"}},
		{"section": "experience", "value": [{"company": "Acme", "position": "Engineer", "startDate": "Jan 2020", "current": true}]},
		{"section": "skills", "value": ["SQL (Technical)", "Teamwork (Soft)"]}
	]}`
	resp := request(t, app, http.MethodPost, "/api/v1/resumes/wizard", wizard, owner)
	if resp.Code != http.StatusCreated {
		t.Fatalf("wizard: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var rec model.Resume
	if err := json.Unmarshal(resp.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decode wizard result: %v", err)
	}

	resp = request(t, app, http.MethodGet, "/api/v1/resumes/"+rec.ID+"/preview", "", owner)
	if resp.Code != http.StatusOK {
		t.Fatalf("preview: expected 200, got %d", resp.Code)
	}
	html := resp.Body.String()
	for _, want := range []string{"Jane Doe", "Present", "SQL", "Teamwork"} {
		if !strings.Contains(html, want) {
			t.Fatalf("preview missing %q", want)
		}
	}

	// Another authenticated user sees someone else's record as missing.
	resp = request(t, app, http.MethodGet, "/api/v1/resumes/"+rec.ID, "", other)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("cross-owner get: expected 404, got %d", resp.Code)
	}
	resp = request(t, app, http.MethodGet, "/api/v1/templates", "", owner)
	if resp.Code != http.StatusOK {
		t.Fatalf("templates: expected 200, got %d", resp.Code)
	}
}
