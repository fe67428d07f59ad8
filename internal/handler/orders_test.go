package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/bekabe-press/api/internal/database"
	"github.com/bekabe-press/api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

// mockOrderDB backs both the order service and the order read handlers.
type mockOrderDB struct {
	orders    []database.Order
	payments  []database.Payment
	statuses  map[int64]string
	customers []database.Customer
	pending   []database.PendingOrderRow
	completed []database.CompletedOrderRow
	details   map[int64]database.OrderDetailsRow
	settings  *database.CompanySettings
}

func newMockOrderDB() *mockOrderDB {
	return &mockOrderDB{
		statuses: make(map[int64]string),
		details:  make(map[int64]database.OrderDetailsRow),
	}
}

func (m *mockOrderDB) CreateOrder(_ context.Context, arg database.CreateOrderParams) (database.Order, error) {
	order := database.Order{
		ID:          int64(len(m.orders) + 1),
		CustomerID:  arg.CustomerID,
		Service:     arg.Service,
		OrderDate:   arg.OrderDate,
		Amount:      arg.Amount,
		PaymentMode: arg.PaymentMode,
		Status:      arg.Status,
	}
	m.orders = append(m.orders, order)
	m.statuses[order.ID] = arg.Status
	return order, nil
}

func (m *mockOrderDB) CreatePayment(_ context.Context, arg database.CreatePaymentParams) (database.Payment, error) {
	payment := database.Payment{
		ID:          int64(len(m.payments) + 1),
		OrderID:     arg.OrderID,
		Amount:      arg.Amount,
		Paid:        arg.Paid,
		PaymentDate: arg.PaymentDate,
	}
	m.payments = append(m.payments, payment)
	return payment, nil
}

func (m *mockOrderDB) UpdateOrderStatus(_ context.Context, arg database.UpdateOrderStatusParams) (int64, error) {
	if _, ok := m.statuses[arg.ID]; !ok {
		return 0, nil
	}
	m.statuses[arg.ID] = arg.Status
	return 1, nil
}

func (m *mockOrderDB) ListCustomers(context.Context) ([]database.Customer, error) {
	return m.customers, nil
}

func (m *mockOrderDB) ListPendingOrders(context.Context, string) ([]database.PendingOrderRow, error) {
	return m.pending, nil
}

func (m *mockOrderDB) ListCompletedOrders(context.Context) ([]database.CompletedOrderRow, error) {
	return m.completed, nil
}

func (m *mockOrderDB) GetOrderDetails(_ context.Context, id int64) (database.OrderDetailsRow, error) {
	row, ok := m.details[id]
	if !ok {
		return database.OrderDetailsRow{}, pgx.ErrNoRows
	}
	return row, nil
}

func (m *mockOrderDB) ListPaymentsByOrder(_ context.Context, orderID int64) ([]database.Payment, error) {
	var items []database.Payment
	for _, p := range m.payments {
		if p.OrderID == orderID {
			items = append(items, p)
		}
	}
	return items, nil
}

func (m *mockOrderDB) GetCompanySettings(context.Context) (database.CompanySettings, error) {
	if m.settings == nil {
		return database.CompanySettings{}, pgx.ErrNoRows
	}
	return *m.settings, nil
}

type mockBroadcaster struct {
	events []string
}

func (m *mockBroadcaster) BroadcastOrderStatus(orderID int64, status string) {
	m.events = append(m.events, status)
}

func newOrderTestServer(db *mockOrderDB) (*chi.Mux, *mockBroadcaster) {
	hub := &mockBroadcaster{}
	h := NewOrderHandler(service.NewOrderService(db), db, hub)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	r.Get("/completed_orders", h.CompletedOrders)
	r.Post("/completed_orders", h.CompletedOrders)
	return r, hub
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddOrderCreatesPairPerService(t *testing.T) {
	db := newMockOrderDB()
	r, _ := newOrderTestServer(db)

	w := postForm(r, "/add_order", url.Values{
		"customer_id": {"7"},
		"service":     {"sticker", "banner"},
		"amount":      {"150.50"},
		"order_date":  {"2024-03-01"},
	})

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/view_order" {
		t.Errorf("expected redirect to /view_order, got %q", loc)
	}
	if len(db.orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(db.orders))
	}
	if len(db.payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(db.payments))
	}
	for _, order := range db.orders {
		if order.Status != "pending" || order.PaymentMode != "Unpaid" {
			t.Errorf("order %d: got status %q mode %q", order.ID, order.Status, order.PaymentMode)
		}
		if order.CustomerID != 7 {
			t.Errorf("order %d: got customer %d", order.ID, order.CustomerID)
		}
	}
	for _, payment := range db.payments {
		if payment.Paid != 0 {
			t.Errorf("payment %d: expected unpaid, got %d", payment.ID, payment.Paid)
		}
	}
}

func TestAddOrderWithoutServices(t *testing.T) {
	db := newMockOrderDB()
	r, _ := newOrderTestServer(db)

	w := postForm(r, "/add_order", url.Values{
		"customer_id": {"1"},
		"amount":      {"50"},
		"order_date":  {"2024-03-01"},
	})

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/add_order" {
		t.Errorf("expected redirect back to /add_order, got %q", loc)
	}
	if len(db.orders) != 0 {
		t.Errorf("expected no orders, got %d", len(db.orders))
	}
}

func TestAddOrderBadAmount(t *testing.T) {
	db := newMockOrderDB()
	r, _ := newOrderTestServer(db)

	w := postForm(r, "/add_order", url.Values{
		"customer_id": {"1"},
		"service":     {"sticker"},
		"amount":      {"abc"},
		"order_date":  {"2024-03-01"},
	})

	if w.Code != http.StatusFound || w.Header().Get("Location") != "/add_order" {
		t.Fatalf("expected redirect back to /add_order, got %d %q", w.Code, w.Header().Get("Location"))
	}
	if len(db.orders) != 0 {
		t.Errorf("expected no orders, got %d", len(db.orders))
	}
}

func TestCompletedOrdersMarksOrder(t *testing.T) {
	db := newMockOrderDB()
	db.statuses[3] = "pending"
	r, hub := newOrderTestServer(db)

	w := postForm(r, "/completed_orders", url.Values{"order_id": {"3"}})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if db.statuses[3] != "Completed" {
		t.Errorf("expected status Completed, got %q", db.statuses[3])
	}
	if len(hub.events) != 1 || hub.events[0] != "Completed" {
		t.Errorf("expected a Completed broadcast, got %v", hub.events)
	}
}

func TestUpdatePaymentStatus(t *testing.T) {
	db := newMockOrderDB()
	db.statuses[5] = "Completed"
	r, hub := newOrderTestServer(db)

	body := `{"order_id": 5, "status": "Credit"}`
	req := httptest.NewRequest(http.MethodPost, "/update_payment_status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["success"] != true {
		t.Errorf("expected success, got %v", resp)
	}
	if db.statuses[5] != "Credit" {
		t.Errorf("expected status Credit, got %q", db.statuses[5])
	}
	if len(hub.events) != 1 || hub.events[0] != "Credit" {
		t.Errorf("expected a Credit broadcast, got %v", hub.events)
	}
}

func TestUpdatePaymentStatusRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json"},
		{"missing order id", `{"status": "Paid"}`},
		{"lifecycle status", `{"order_id": 5, "status": "pending"}`},
		{"completed status", `{"order_id": 5, "status": "Completed"}`},
		{"wrong case", `{"order_id": 5, "status": "PAID"}`},
		{"empty status", `{"order_id": 5, "status": ""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newMockOrderDB()
			db.statuses[5] = "Completed"
			r, hub := newOrderTestServer(db)

			req := httptest.NewRequest(http.MethodPost, "/update_payment_status", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			var resp map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp["success"] != false || resp["error"] != "Invalid input" {
				t.Errorf("unexpected body: %v", resp)
			}
			if db.statuses[5] != "Completed" {
				t.Errorf("status should be untouched, got %q", db.statuses[5])
			}
			if len(hub.events) != 0 {
				t.Errorf("expected no broadcast, got %v", hub.events)
			}
		})
	}
}

func TestOrderDetailsNotFound(t *testing.T) {
	db := newMockOrderDB()
	r, _ := newOrderTestServer(db)

	req := httptest.NewRequest(http.MethodGet, "/order_details/99", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/completed_orders" {
		t.Errorf("expected redirect to /completed_orders, got %q", loc)
	}
	if !hasFlashCookie(w, "Order not found") {
		t.Error("expected an order-not-found flash")
	}
}

func TestOrderDetailsShowsPaymentRecord(t *testing.T) {
	db := newMockOrderDB()
	db.details[2] = database.OrderDetailsRow{OrderID: 2, CustomerName: "Yaw Boateng", Status: "Paid"}
	db.payments = append(db.payments, database.Payment{ID: 1, OrderID: 2, Paid: 0, PaymentDate: "2024-03-01"})
	r, _ := newOrderTestServer(db)

	req := httptest.NewRequest(http.MethodGet, "/order_details/2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Yaw Boateng") {
		t.Error("expected the customer name on the details page")
	}
	// Settling an order never flips the payment row's paid flag, so the
	// record still reads unpaid even though the order is Paid.
	if !strings.Contains(body, "2024-03-01") {
		t.Error("expected the payment date on the details page")
	}
}

func TestPrintOrderNotFound(t *testing.T) {
	db := newMockOrderDB()
	r, _ := newOrderTestServer(db)

	req := httptest.NewRequest(http.MethodGet, "/print_order/99", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/view_order" {
		t.Errorf("expected redirect to /view_order, got %q", loc)
	}
}

func TestPrintOrderDefaultLetterhead(t *testing.T) {
	db := newMockOrderDB()
	db.details[4] = database.OrderDetailsRow{
		OrderID:      4,
		CustomerName: "Ama Mensah",
		Service:      "banner",
		PaymentMode:  "Unpaid",
		OrderDate:    "2024-03-01",
		Status:       "Completed",
	}
	r, _ := newOrderTestServer(db)

	req := httptest.NewRequest(http.MethodGet, "/print_order/4", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Bekabe Printing Press") {
		t.Error("expected the default company name on the receipt")
	}
	if !strings.Contains(body, "123 Main Street, Accra, Ghana") {
		t.Error("expected the default company address on the receipt")
	}
	if !strings.Contains(body, "Ama Mensah") {
		t.Error("expected the customer name on the receipt")
	}
}

func TestPrintOrderSavedLetterhead(t *testing.T) {
	db := newMockOrderDB()
	db.details[4] = database.OrderDetailsRow{OrderID: 4, CustomerName: "Kofi", Status: "Paid"}
	db.settings = &database.CompanySettings{
		Name:    "Sunrise Prints",
		Address: "45 Ring Road, Kumasi",
		Phone:   "+233 20 000 0000",
	}
	r, _ := newOrderTestServer(db)

	req := httptest.NewRequest(http.MethodGet, "/print_order/4", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Sunrise Prints") {
		t.Error("expected the saved company name on the receipt")
	}
}

func hasFlashCookie(w *httptest.ResponseRecorder, msg string) bool {
	for _, c := range w.Result().Cookies() {
		if c.Name == flashCookie {
			decoded, err := url.QueryUnescape(c.Value)
			if err == nil && decoded == msg {
				return true
			}
		}
	}
	return false
}
