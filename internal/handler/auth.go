package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/bekabe-press/api/internal/auth"
	"github.com/bekabe-press/api/internal/database"
	"github.com/bekabe-press/api/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

// AuthStore defines the database methods needed by auth handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type AuthStore interface {
	GetUserByCredentials(ctx context.Context, arg database.GetUserByCredentialsParams) (database.User, error)
}

// AuthHandler handles the login gate.
type AuthHandler struct {
	store     AuthStore
	jwtSecret string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(store AuthStore, jwtSecret string) *AuthHandler {
	return &AuthHandler{store: store, jwtSecret: jwtSecret}
}

// RegisterRoutes registers the public auth endpoints.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Index)
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.Login)
	r.Get("/logout", h.Logout)
}

type loginPageData struct {
	Error string
}

// Index redirects the root path to the login page.
func (h *AuthHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusFound)
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	render(w, "login.html", loginPageData{})
}

// Login checks the submitted credentials and opens a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, "login.html", loginPageData{Error: "Invalid credentials"})
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.store.GetUserByCredentials(r.Context(), database.GetUserByCredentialsParams{
		Username: username,
		Password: password,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			render(w, "login.html", loginPageData{Error: "Invalid credentials"})
			return
		}
		log.Printf("ERROR: login lookup: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	token, err := auth.GenerateToken(h.jwtSecret, user.ID, user.Username)
	if err != nil {
		log.Printf("ERROR: generate session token: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	middleware.SetSessionCookie(w, token)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// Logout closes the session and returns to the login page.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}
