package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/bekabe-press/api/internal/database"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

// UserStore defines the database methods needed by UserHandler.
// Satisfied by *database.Queries; narrow interface for testability.
type UserStore interface {
	ListUsers(ctx context.Context) ([]database.User, error)
	GetUser(ctx context.Context, id int64) (database.User, error)
	CreateUser(ctx context.Context, arg database.CreateUserParams) (database.User, error)
	UpdateUser(ctx context.Context, arg database.UpdateUserParams) error
	DeleteUser(ctx context.Context, id int64) error
}

// UserHandler handles the login-account management pages.
type UserHandler struct {
	store UserStore
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(store UserStore) *UserHandler {
	return &UserHandler{store: store}
}

// RegisterRoutes registers the user-management endpoints to the router.
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/users", h.Users)
	r.Post("/users", h.AddUser)
	r.Get("/edit_user/{id}", h.EditUserPage)
	r.Post("/edit_user/{id}", h.EditUser)
	r.Post("/delete_user/{id}", h.DeleteUser)
}

type usersPageData struct {
	Users []database.User
	Flash string
}

type editUserPageData struct {
	User database.User
}

// Users renders the account list with the add form.
func (h *UserHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		log.Printf("ERROR: list users: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	render(w, "users.html", usersPageData{Users: users, Flash: popFlash(w, r)})
}

// AddUser creates a login account.
func (h *UserHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		setFlash(w, "Invalid form submission")
		http.Redirect(w, r, "/users", http.StatusFound)
		return
	}
	_, err := h.store.CreateUser(r.Context(), database.CreateUserParams{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		log.Printf("ERROR: create user: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/users", http.StatusFound)
}

// EditUserPage renders the edit form for one account.
func (h *UserHandler) EditUserPage(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		setFlash(w, "User not found")
		http.Redirect(w, r, "/users", http.StatusFound)
		return
	}
	user, err := h.store.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			setFlash(w, "User not found")
			http.Redirect(w, r, "/users", http.StatusFound)
			return
		}
		log.Printf("ERROR: get user: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	render(w, "edit_user.html", editUserPageData{User: user})
}

// EditUser applies the edit form and returns to the account list.
func (h *UserHandler) EditUser(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		setFlash(w, "User not found")
		http.Redirect(w, r, "/users", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		setFlash(w, "Invalid form submission")
		http.Redirect(w, r, "/users", http.StatusFound)
		return
	}
	err = h.store.UpdateUser(r.Context(), database.UpdateUserParams{
		ID:       id,
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		log.Printf("ERROR: update user: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/users", http.StatusFound)
}

// DeleteUser removes a login account.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		setFlash(w, "User not found")
		http.Redirect(w, r, "/users", http.StatusFound)
		return
	}
	if err := h.store.DeleteUser(r.Context(), id); err != nil {
		log.Printf("ERROR: delete user: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/users", http.StatusFound)
}
