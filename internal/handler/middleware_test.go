package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mesadeayuda/helpdesk-service/internal/session"
)

func TestSessionMiddlewareUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	resolver := session.NewResolver(nil, nil, "secret", time.Minute)
	r.Use(SessionMiddleware(resolver))
	r.GET("/api/v1/session", CurrentSession)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session?path=/worker-dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", w.Code)
	}
	var body struct {
		RedirectTo string `json:"redirect_to"`
		From       string `json:"from"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.RedirectTo != "/login" {
		t.Fatalf("redirect_to = %q, want /login", body.RedirectTo)
	}
	if body.From != "/worker-dashboard" {
		t.Fatalf("from = %q, want requested path carried", body.From)
	}
}

func TestSessionMiddlewareRejectsGarbageToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	resolver := session.NewResolver(nil, nil, "secret", time.Minute)
	r.Use(SessionMiddleware(resolver))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", w.Code)
	}
}

func TestBearerToken(t *testing.T) {
	if got := bearerToken("Bearer abc"); got != "abc" {
		t.Fatalf("got %q", got)
	}
	for _, h := range []string{"", "abc", "bearer abc", "Basic abc"} {
		if got := bearerToken(h); got != "" {
			t.Errorf("bearerToken(%q) = %q, want empty", h, got)
		}
	}
}
