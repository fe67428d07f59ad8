package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bekabe-press/api/internal/config"
	"github.com/bekabe-press/api/internal/database"
	"github.com/bekabe-press/api/internal/handler"
	mw "github.com/bekabe-press/api/internal/middleware"
	"github.com/bekabe-press/api/internal/service"
	"github.com/bekabe-press/api/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// New creates a Chi router with all application routes wired up. Pages are
// session-gated; the login page, static assets and the websocket endpoint
// stay public (the socket checks the session cookie itself).
func New(cfg *config.Config, queries *database.Queries, hub *ws.Hub) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS for the JSON endpoint and the websocket; pages are same-origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{fmt.Sprintf("http://localhost:%s", cfg.Port)},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Login gate (public)
	authHandler := handler.NewAuthHandler(queries, cfg.JWTSecret)
	authHandler.RegisterRoutes(r)

	// Static assets, including uploaded logos
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// WebSocket feed of order status changes (checks the session itself)
	r.Get("/ws/orders", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, cfg.JWTSecret, w, r)
	})

	orderSvc := service.NewOrderService(queries)
	orderHandler := handler.NewOrderHandler(orderSvc, queries, hub)

	// The legacy system served the completed-orders page without a login
	// check. Kept behind a flag for installs that rely on it.
	if cfg.LegacyOpenCompleted {
		r.Get("/completed_orders", orderHandler.CompletedOrders)
		r.Post("/completed_orders", orderHandler.CompletedOrders)
	}

	// Session-gated pages
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret))

		handler.NewDashboardHandler(queries).RegisterRoutes(r)
		orderHandler.RegisterRoutes(r)
		if !cfg.LegacyOpenCompleted {
			r.Get("/completed_orders", orderHandler.CompletedOrders)
			r.Post("/completed_orders", orderHandler.CompletedOrders)
		}
		handler.NewCustomerHandler(queries).RegisterRoutes(r)
		handler.NewEmployeeHandler(queries).RegisterRoutes(r)
		handler.NewUserHandler(queries).RegisterRoutes(r)
		handler.NewExpenseHandler(queries).RegisterRoutes(r)
		handler.NewServiceHandler().RegisterRoutes(r)
		handler.NewSettingsHandler(queries, cfg.UploadDir).RegisterRoutes(r)
	})

	// Route listing for local debugging only.
	if cfg.DebugRoutes {
		r.Get("/routes", func(w http.ResponseWriter, req *http.Request) {
			var b strings.Builder
			_ = chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
				fmt.Fprintf(&b, "%s %s\n", method, route)
				return nil
			})
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Write([]byte(b.String()))
		})
	}

	return r
}
