package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/bekabe-press/api/internal/database"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

type mockCustomerStore struct {
	customers  []database.Customer
	ledger     map[string][]database.LedgerCustomerRow
	lastStatus string
	deleted    []int64
	updated    *database.UpdateCustomerParams
}

func (m *mockCustomerStore) ListCustomers(context.Context) ([]database.Customer, error) {
	return m.customers, nil
}

func (m *mockCustomerStore) GetCustomer(_ context.Context, id int64) (database.Customer, error) {
	for _, c := range m.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return database.Customer{}, pgx.ErrNoRows
}

func (m *mockCustomerStore) CreateCustomer(_ context.Context, arg database.CreateCustomerParams) (database.Customer, error) {
	c := database.Customer{
		ID:      int64(len(m.customers) + 1),
		Name:    arg.Name,
		Mobile:  arg.Mobile,
		Email:   arg.Email,
		Address: arg.Address,
	}
	m.customers = append(m.customers, c)
	return c, nil
}

func (m *mockCustomerStore) UpdateCustomer(_ context.Context, arg database.UpdateCustomerParams) error {
	m.updated = &arg
	return nil
}

func (m *mockCustomerStore) DeleteCustomer(_ context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockCustomerStore) ListCustomersByOrderStatus(_ context.Context, status string) ([]database.LedgerCustomerRow, error) {
	m.lastStatus = status
	return m.ledger[status], nil
}

func newCustomerTestServer(store *mockCustomerStore) *chi.Mux {
	r := chi.NewRouter()
	NewCustomerHandler(store).RegisterRoutes(r)
	return r
}

func TestAddCustomer(t *testing.T) {
	store := &mockCustomerStore{}
	r := newCustomerTestServer(store)

	w := postForm(r, "/customers", url.Values{
		"name":    {"Ama Mensah"},
		"mobile":  {"0244000000"},
		"email":   {"ama@example.com"},
		"address": {"Osu, Accra"},
	})

	if w.Code != http.StatusFound || w.Header().Get("Location") != "/view_customer" {
		t.Fatalf("expected redirect to /view_customer, got %d %q", w.Code, w.Header().Get("Location"))
	}
	if len(store.customers) != 1 || store.customers[0].Name != "Ama Mensah" {
		t.Errorf("unexpected customers: %+v", store.customers)
	}
}

func TestAddCustomerViaViewCustomer(t *testing.T) {
	store := &mockCustomerStore{}
	r := newCustomerTestServer(store)

	w := postForm(r, "/view_customer", url.Values{
		"name":   {"Kofi Boateng"},
		"mobile": {"0201111111"},
	})

	if w.Code != http.StatusFound || w.Header().Get("Location") != "/view_customer" {
		t.Fatalf("expected redirect to /view_customer, got %d %q", w.Code, w.Header().Get("Location"))
	}
	if len(store.customers) != 1 || store.customers[0].Name != "Kofi Boateng" {
		t.Errorf("unexpected customers: %+v", store.customers)
	}
}

func TestAddCustomerPageListsCustomers(t *testing.T) {
	store := &mockCustomerStore{customers: []database.Customer{
		{ID: 1, Name: "Ama Mensah", Mobile: "0244000000"},
		{ID: 2, Name: "Kofi Boateng", Mobile: "0201111111"},
	}}
	r := newCustomerTestServer(store)

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, name := range []string{"Ama Mensah", "Kofi Boateng"} {
		if !strings.Contains(body, name) {
			t.Errorf("customer page missing %q", name)
		}
	}
}

func TestEditCustomerNotFound(t *testing.T) {
	store := &mockCustomerStore{}
	r := newCustomerTestServer(store)

	req := httptest.NewRequest(http.MethodGet, "/edit_customer/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound || w.Header().Get("Location") != "/view_customer" {
		t.Fatalf("expected redirect to /view_customer, got %d %q", w.Code, w.Header().Get("Location"))
	}
	if !hasFlashCookie(w, "Customer not found") {
		t.Error("expected a customer-not-found flash")
	}
}

func TestEditCustomer(t *testing.T) {
	store := &mockCustomerStore{customers: []database.Customer{{ID: 3, Name: "Old"}}}
	r := newCustomerTestServer(store)

	w := postForm(r, "/edit_customer/3", url.Values{
		"name":   {"New Name"},
		"mobile": {"0200000000"},
	})

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if store.updated == nil || store.updated.ID != 3 || store.updated.Name != "New Name" {
		t.Errorf("unexpected update: %+v", store.updated)
	}
}

func TestDeleteCustomer(t *testing.T) {
	store := &mockCustomerStore{}
	r := newCustomerTestServer(store)

	w := postForm(r, "/delete_customer/5", url.Values{})

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if len(store.deleted) != 1 || store.deleted[0] != 5 {
		t.Errorf("expected delete of id 5, got %v", store.deleted)
	}
}

func TestLedgerPagesFilterByStatus(t *testing.T) {
	store := &mockCustomerStore{ledger: map[string][]database.LedgerCustomerRow{
		"Credit": {{ID: 1, Name: "Kofi Credit"}},
		"Paid":   {{ID: 2, Name: "Afia Paid"}},
	}}
	r := newCustomerTestServer(store)

	req := httptest.NewRequest(http.MethodGet, "/customer_ledger", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if store.lastStatus != "Credit" {
		t.Errorf("customer_ledger queried status %q", store.lastStatus)
	}
	if !strings.Contains(w.Body.String(), "Kofi Credit") {
		t.Error("expected the credit customer on the ledger")
	}

	req = httptest.NewRequest(http.MethodGet, "/payment_voucher", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if store.lastStatus != "Paid" {
		t.Errorf("payment_voucher queried status %q", store.lastStatus)
	}
	if !strings.Contains(w.Body.String(), "Afia Paid") {
		t.Error("expected the paid customer on the voucher page")
	}
}
