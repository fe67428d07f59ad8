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

// EmployeeStore defines the database methods needed by EmployeeHandler.
// Satisfied by *database.Queries; narrow interface for testability.
type EmployeeStore interface {
	ListEmployees(ctx context.Context) ([]database.Employee, error)
	GetEmployee(ctx context.Context, id int64) (database.Employee, error)
	CreateEmployee(ctx context.Context, arg database.CreateEmployeeParams) (database.Employee, error)
	UpdateEmployee(ctx context.Context, arg database.UpdateEmployeeParams) error
	DeleteEmployee(ctx context.Context, id int64) error
}

// EmployeeHandler handles the staff directory pages.
type EmployeeHandler struct {
	store EmployeeStore
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(store EmployeeStore) *EmployeeHandler {
	return &EmployeeHandler{store: store}
}

// RegisterRoutes registers the employee endpoints to the router.
func (h *EmployeeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/employees", h.Employees)
	r.Post("/employees", h.AddEmployee)
	r.Get("/edit_employee/{id}", h.EditEmployeePage)
	r.Post("/edit_employee/{id}", h.EditEmployee)
	r.Post("/delete_employee/{id}", h.DeleteEmployee)
}

type employeesPageData struct {
	Employees []database.Employee
	Flash     string
}

type editEmployeePageData struct {
	Employee database.Employee
}

// Employees renders the staff list with the add form.
func (h *EmployeeHandler) Employees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.store.ListEmployees(r.Context())
	if err != nil {
		log.Printf("ERROR: list employees: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	render(w, "employees.html", employeesPageData{Employees: employees, Flash: popFlash(w, r)})
}

// AddEmployee creates a staff record from the form.
func (h *EmployeeHandler) AddEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		setFlash(w, "Invalid form submission")
		http.Redirect(w, r, "/employees", http.StatusFound)
		return
	}
	_, err := h.store.CreateEmployee(r.Context(), database.CreateEmployeeParams{
		Name:    r.PostFormValue("name"),
		Role:    r.PostFormValue("role"),
		Mobile:  r.PostFormValue("mobile"),
		Email:   r.PostFormValue("email"),
		Address: r.PostFormValue("address"),
	})
	if err != nil {
		log.Printf("ERROR: create employee: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/employees", http.StatusFound)
}

// EditEmployeePage renders the edit form for one staff record.
func (h *EmployeeHandler) EditEmployeePage(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		setFlash(w, "Employee not found")
		http.Redirect(w, r, "/employees", http.StatusFound)
		return
	}
	employee, err := h.store.GetEmployee(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			setFlash(w, "Employee not found")
			http.Redirect(w, r, "/employees", http.StatusFound)
			return
		}
		log.Printf("ERROR: get employee: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	render(w, "edit_employee.html", editEmployeePageData{Employee: employee})
}

// EditEmployee applies the edit form and returns to the staff list.
func (h *EmployeeHandler) EditEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		setFlash(w, "Employee not found")
		http.Redirect(w, r, "/employees", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		setFlash(w, "Invalid form submission")
		http.Redirect(w, r, "/employees", http.StatusFound)
		return
	}
	err = h.store.UpdateEmployee(r.Context(), database.UpdateEmployeeParams{
		ID:      id,
		Name:    r.PostFormValue("name"),
		Role:    r.PostFormValue("role"),
		Mobile:  r.PostFormValue("mobile"),
		Email:   r.PostFormValue("email"),
		Address: r.PostFormValue("address"),
	})
	if err != nil {
		log.Printf("ERROR: update employee: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/employees", http.StatusFound)
}

// DeleteEmployee removes a staff record.
func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		setFlash(w, "Employee not found")
		http.Redirect(w, r, "/employees", http.StatusFound)
		return
	}
	if err := h.store.DeleteEmployee(r.Context(), id); err != nil {
		log.Printf("ERROR: delete employee: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/employees", http.StatusFound)
}
