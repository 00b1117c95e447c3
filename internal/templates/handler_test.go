package templates

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder/resume/render"
)

func TestListTemplates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	api := router.Group("/api/v1")
	NewHandler().RegisterRoutes(api)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/templates", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Templates []Template `json:"templates"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Templates) == 0 {
		t.Fatalf("expected a non-empty catalog")
	}
	for _, tpl := range body.Templates {
		if tpl.ID == "" || tpl.Name == "" {
			t.Fatalf("incomplete catalog entry: %+v", tpl)
		}
	}
}

// Every catalog entry must be renderable and every renderable variant must be
// offered, or the wizard and the renderer drift apart.
func TestCatalogMatchesRenderVariants(t *testing.T) {
	variants := map[string]bool{}
	for _, v := range render.Variants() {
		variants[v] = true
	}

	listed := map[string]bool{}
	for _, tpl := range List() {
		if !variants[tpl.ID] {
			t.Fatalf("catalog entry %q has no rendering variant", tpl.ID)
		}
		listed[tpl.ID] = true
	}
	for v := range variants {
		if !listed[v] {
			t.Fatalf("rendering variant %q missing from catalog", v)
		}
	}
}
