package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/bekabe-press/api/internal/database"
	"github.com/bekabe-press/api/internal/enum"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

// CustomerStore defines the database methods needed by CustomerHandler.
// Satisfied by *database.Queries; narrow interface for testability.
type CustomerStore interface {
	ListCustomers(ctx context.Context) ([]database.Customer, error)
	GetCustomer(ctx context.Context, id int64) (database.Customer, error)
	CreateCustomer(ctx context.Context, arg database.CreateCustomerParams) (database.Customer, error)
	UpdateCustomer(ctx context.Context, arg database.UpdateCustomerParams) error
	DeleteCustomer(ctx context.Context, id int64) error
	ListCustomersByOrderStatus(ctx context.Context, status string) ([]database.LedgerCustomerRow, error)
}

// CustomerHandler handles the customer directory pages and the two
// settlement ledgers.
type CustomerHandler struct {
	store CustomerStore
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(store CustomerStore) *CustomerHandler {
	return &CustomerHandler{store: store}
}

// RegisterRoutes registers the customer endpoints to the router.
func (h *CustomerHandler) RegisterRoutes(r chi.Router) {
	r.Get("/customers", h.AddCustomerPage)
	r.Post("/customers", h.AddCustomer)
	r.Get("/view_customer", h.ViewCustomers)
	r.Post("/view_customer", h.AddCustomer)
	r.Get("/edit_customer/{id}", h.EditCustomerPage)
	r.Post("/edit_customer/{id}", h.EditCustomer)
	r.Post("/delete_customer/{id}", h.DeleteCustomer)
	r.Get("/customer_ledger", h.CreditCustomers)
	r.Post("/customer_ledger", h.CreditCustomers)
	r.Get("/payment_voucher", h.PaidCustomers)
}

type customerListPageData struct {
	Customers []database.Customer
	Flash     string
}

type editCustomerPageData struct {
	Customer database.Customer
}

type ledgerPageData struct {
	Customers []database.LedgerCustomerRow
}

// AddCustomerPage renders the new-customer form above the full customer
// list.
func (h *CustomerHandler) AddCustomerPage(w http.ResponseWriter, r *http.Request) {
	customers, err := h.store.ListCustomers(r.Context())
	if err != nil {
		log.Printf("ERROR: list customers: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	render(w, "customers.html", customerListPageData{Customers: customers, Flash: popFlash(w, r)})
}

// AddCustomer creates a customer from the form and sends the user to the
// customer list.
func (h *CustomerHandler) AddCustomer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		setFlash(w, "Invalid form submission")
		http.Redirect(w, r, "/customers", http.StatusFound)
		return
	}
	_, err := h.store.CreateCustomer(r.Context(), database.CreateCustomerParams{
		Name:    r.PostFormValue("name"),
		Mobile:  r.PostFormValue("mobile"),
		Email:   r.PostFormValue("email"),
		Address: r.PostFormValue("address"),
	})
	if err != nil {
		log.Printf("ERROR: create customer: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/view_customer", http.StatusFound)
}

// ViewCustomers lists every customer.
func (h *CustomerHandler) ViewCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.store.ListCustomers(r.Context())
	if err != nil {
		log.Printf("ERROR: list customers: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	render(w, "view_customer.html", customerListPageData{Customers: customers, Flash: popFlash(w, r)})
}

// EditCustomerPage renders the edit form for one customer.
func (h *CustomerHandler) EditCustomerPage(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		setFlash(w, "Customer not found")
		http.Redirect(w, r, "/view_customer", http.StatusFound)
		return
	}
	customer, err := h.store.GetCustomer(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			setFlash(w, "Customer not found")
			http.Redirect(w, r, "/view_customer", http.StatusFound)
			return
		}
		log.Printf("ERROR: get customer: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	render(w, "edit_customer.html", editCustomerPageData{Customer: customer})
}

// EditCustomer applies the edit form and returns to the customer list.
func (h *CustomerHandler) EditCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		setFlash(w, "Customer not found")
		http.Redirect(w, r, "/view_customer", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		setFlash(w, "Invalid form submission")
		http.Redirect(w, r, "/view_customer", http.StatusFound)
		return
	}
	err = h.store.UpdateCustomer(r.Context(), database.UpdateCustomerParams{
		ID:      id,
		Name:    r.PostFormValue("name"),
		Mobile:  r.PostFormValue("mobile"),
		Email:   r.PostFormValue("email"),
		Address: r.PostFormValue("address"),
	})
	if err != nil {
		log.Printf("ERROR: update customer: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/view_customer", http.StatusFound)
}

// DeleteCustomer removes a customer. Their orders are kept and become
// orphans, matching the ledger pages which join through orders.
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		setFlash(w, "Customer not found")
		http.Redirect(w, r, "/view_customer", http.StatusFound)
		return
	}
	if err := h.store.DeleteCustomer(r.Context(), id); err != nil {
		log.Printf("ERROR: delete customer: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/view_customer", http.StatusFound)
}

// CreditCustomers lists customers with at least one order settled on
// credit.
func (h *CustomerHandler) CreditCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.store.ListCustomersByOrderStatus(r.Context(), enum.OrderStatusCredit)
	if err != nil {
		log.Printf("ERROR: list credit customers: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	render(w, "credit_customers.html", ledgerPageData{Customers: customers})
}

// PaidCustomers lists customers with at least one fully paid order.
func (h *CustomerHandler) PaidCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.store.ListCustomersByOrderStatus(r.Context(), enum.OrderStatusPaid)
	if err != nil {
		log.Printf("ERROR: list paid customers: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	render(w, "paid_customers.html", ledgerPageData{Customers: customers})
}
