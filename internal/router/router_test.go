package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bekabe-press/api/internal/config"
	"github.com/bekabe-press/api/internal/database"
	"github.com/bekabe-press/api/internal/router"
	"github.com/bekabe-press/api/internal/ws"
)

func preflight(t *testing.T, port, origin string) *httptest.ResponseRecorder {
	t.Helper()
	cfg := &config.Config{Port: port, JWTSecret: "router-test-secret"}
	r := router.New(cfg, database.New(nil), ws.NewHub())

	req := httptest.NewRequest(http.MethodOptions, "/update_payment_status", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSOriginFollowsConfiguredPort(t *testing.T) {
	w := preflight(t, "9090", "http://localhost:9090")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:9090" {
		t.Fatalf("Access-Control-Allow-Origin: got %q, want %q", got, "http://localhost:9090")
	}
}

func TestCORSRejectsForeignOrigin(t *testing.T) {
	w := preflight(t, "9090", "http://localhost:8080")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("Access-Control-Allow-Origin: got %q, want empty", got)
	}
}
