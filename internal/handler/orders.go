package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/bekabe-press/api/internal/database"
	"github.com/bekabe-press/api/internal/enum"
	"github.com/bekabe-press/api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

// OrderServicer defines the lifecycle methods needed by order handlers.
// Satisfied by *service.OrderService; narrow interface for testability.
type OrderServicer interface {
	CreateOrders(ctx context.Context, req service.CreateOrdersRequest) ([]database.Order, error)
	MarkCompleted(ctx context.Context, orderID int64) error
	UpdatePaymentStatus(ctx context.Context, orderID int64, status string) error
}

// OrderStore defines the database methods needed by order read handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type OrderStore interface {
	ListCustomers(ctx context.Context) ([]database.Customer, error)
	ListPendingOrders(ctx context.Context, status string) ([]database.PendingOrderRow, error)
	ListCompletedOrders(ctx context.Context) ([]database.CompletedOrderRow, error)
	GetOrderDetails(ctx context.Context, id int64) (database.OrderDetailsRow, error)
	ListPaymentsByOrder(ctx context.Context, orderID int64) ([]database.Payment, error)
	GetCompanySettings(ctx context.Context) (database.CompanySettings, error)
}

// Broadcaster publishes order events to connected browsers.
// Satisfied by *ws.Hub.
type Broadcaster interface {
	BroadcastOrderStatus(orderID int64, status string)
}

// OrderHandler handles the order lifecycle pages and the payment-status
// JSON endpoint.
type OrderHandler struct {
	svc   OrderServicer
	store OrderStore
	hub   Broadcaster
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(svc OrderServicer, store OrderStore, hub Broadcaster) *OrderHandler {
	return &OrderHandler{svc: svc, store: store, hub: hub}
}

// RegisterRoutes registers the session-gated order endpoints.
// /completed_orders is wired separately by the router because its gating
// is configurable.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/add_order", h.AddOrderPage)
	r.Post("/add_order", h.AddOrder)
	r.Get("/view_order", h.ViewOrder)
	r.Post("/update_payment_status", h.UpdatePaymentStatus)
	r.Get("/order_details/{id}", h.OrderDetails)
	r.Get("/print_order/{id}", h.PrintOrder)
}

// --- Page data / request types ---

type addOrderPageData struct {
	Customers []database.Customer
	Flash     string
}

type pendingOrderView struct {
	ID           int64
	CustomerName string
	Contact      string
	Mobile       string
	Email        string
	Address      string
	Service      string
	OrderDate    string
	Status       string
}

type viewOrderPageData struct {
	PendingOrders []pendingOrderView
	Flash         string
}

type completedOrderView struct {
	ID           int64
	CustomerName string
	Service      string
	Amount       string
	Status       string
	OrderDate    string
}

type completedOrdersPageData struct {
	CompletedOrders []completedOrderView
	Flash           string
}

type orderDetailsPageData struct {
	Order    orderDetailsView
	Payments []paymentView
}

type paymentView struct {
	ID          int64
	Amount      string
	Paid        bool
	PaymentDate string
}

type orderDetailsView struct {
	ID           int64
	CustomerName string
	Mobile       string
	Email        string
	Address      string
	Service      string
	Amount       string
	PaymentMode  string
	OrderDate    string
	Status       string
}

type printOrderPageData struct {
	Order          orderDetailsView
	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	CompanyLogo    string
}

type updatePaymentStatusRequest struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

// --- Handlers ---

// AddOrderPage renders the order form with the customer dropdown.
func (h *OrderHandler) AddOrderPage(w http.ResponseWriter, r *http.Request) {
	customers, err := h.store.ListCustomers(r.Context())
	if err != nil {
		log.Printf("ERROR: list customers for order form: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	render(w, "add_order.html", addOrderPageData{Customers: customers, Flash: popFlash(w, r)})
}

// AddOrder creates one order + payment pair per selected service, then
// sends the user to the pending-orders list.
func (h *OrderHandler) AddOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		setFlash(w, "Invalid form submission")
		http.Redirect(w, r, "/add_order", http.StatusFound)
		return
	}

	customerID, err := strconv.ParseInt(r.PostFormValue("customer_id"), 10, 64)
	if err != nil {
		setFlash(w, "Invalid customer")
		http.Redirect(w, r, "/add_order", http.StatusFound)
		return
	}

	_, err = h.svc.CreateOrders(r.Context(), service.CreateOrdersRequest{
		CustomerID: customerID,
		Services:   r.PostForm["service"],
		Amount:     r.PostFormValue("amount"),
		OrderDate:  r.PostFormValue("order_date"),
	})
	switch {
	case errors.Is(err, service.ErrNoServices):
		setFlash(w, "Select at least one service")
		http.Redirect(w, r, "/add_order", http.StatusFound)
		return
	case errors.Is(err, service.ErrInvalidAmount):
		setFlash(w, "Invalid amount")
		http.Redirect(w, r, "/add_order", http.StatusFound)
		return
	case err != nil:
		log.Printf("ERROR: create orders: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/view_order", http.StatusFound)
}

// ViewOrder lists pending orders with their customer details.
func (h *OrderHandler) ViewOrder(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ListPendingOrders(r.Context(), enum.OrderStatusPending)
	if err != nil {
		log.Printf("ERROR: list pending orders: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	views := make([]pendingOrderView, len(rows))
	for i, row := range rows {
		views[i] = pendingOrderView{
			ID:           row.OrderID,
			CustomerName: row.CustomerName,
			Contact:      row.Contact.String,
			Mobile:       row.Mobile,
			Email:        row.Email,
			Address:      row.Address,
			Service:      row.Service,
			OrderDate:    row.OrderDate,
			Status:       row.Status,
		}
	}
	render(w, "view_order.html", viewOrderPageData{PendingOrders: views, Flash: popFlash(w, r)})
}

// CompletedOrders lists completed/settled orders: status Completed, Paid or
// Credit. A POST with an order_id first marks that order Completed.
func (h *OrderHandler) CompletedOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err == nil {
			if orderID, err := strconv.ParseInt(r.PostFormValue("order_id"), 10, 64); err == nil {
				if err := h.svc.MarkCompleted(r.Context(), orderID); err != nil {
					log.Printf("ERROR: mark order %d completed: %v", orderID, err)
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}
				h.hub.BroadcastOrderStatus(orderID, enum.OrderStatusCompleted)
			}
		}
	}

	rows, err := h.store.ListCompletedOrders(r.Context())
	if err != nil {
		log.Printf("ERROR: list completed orders: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	views := make([]completedOrderView, len(rows))
	for i, row := range rows {
		views[i] = completedOrderView{
			ID:           row.OrderID,
			CustomerName: row.CustomerName,
			Service:      row.Service,
			Amount:       numericToString(row.Amount),
			Status:       row.Status,
			OrderDate:    row.OrderDate,
		}
	}
	render(w, "completed_orders.html", completedOrdersPageData{CompletedOrders: views, Flash: popFlash(w, r)})
}

// UpdatePaymentStatus settles an order as Paid or Credit via AJAX.
func (h *OrderHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req updatePaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "Invalid input"})
		return
	}

	err := h.svc.UpdatePaymentStatus(r.Context(), req.OrderID, req.Status)
	switch {
	case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrMissingOrderID):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "Invalid input"})
		return
	case err != nil:
		log.Printf("ERROR: update payment status: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "error": "internal server error"})
		return
	}

	h.hub.BroadcastOrderStatus(req.OrderID, req.Status)
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// OrderDetails shows one order with its customer.
func (h *OrderHandler) OrderDetails(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		setFlash(w, "Order not found")
		http.Redirect(w, r, "/completed_orders", http.StatusFound)
		return
	}

	row, err := h.store.GetOrderDetails(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			setFlash(w, "Order not found")
			http.Redirect(w, r, "/completed_orders", http.StatusFound)
			return
		}
		log.Printf("ERROR: get order details: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	payments, err := h.store.ListPaymentsByOrder(r.Context(), id)
	if err != nil {
		log.Printf("ERROR: list payments for order %d: %v", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	views := make([]paymentView, len(payments))
	for i, p := range payments {
		views[i] = paymentView{
			ID:          p.ID,
			Amount:      numericToString(p.Amount),
			Paid:        p.Paid != 0,
			PaymentDate: p.PaymentDate,
		}
	}

	render(w, "order_details.html", orderDetailsPageData{Order: toOrderDetailsView(row), Payments: views})
}

// PrintOrder renders the printable receipt: order, customer and the
// company letterhead from settings.
func (h *OrderHandler) PrintOrder(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r)
	if err != nil {
		setFlash(w, "Order not found")
		http.Redirect(w, r, "/view_order", http.StatusFound)
		return
	}

	row, err := h.store.GetOrderDetails(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			setFlash(w, "Order not found")
			http.Redirect(w, r, "/view_order", http.StatusFound)
			return
		}
		log.Printf("ERROR: get order for receipt: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	settings := companySettingsOrDefaults(r.Context(), h.store)
	render(w, "print_order.html", printOrderPageData{
		Order:          toOrderDetailsView(row),
		CompanyName:    settings.Name,
		CompanyAddress: settings.Address,
		CompanyPhone:   settings.Phone,
		CompanyLogo:    settings.Logo,
	})
}

func toOrderDetailsView(row database.OrderDetailsRow) orderDetailsView {
	return orderDetailsView{
		ID:           row.OrderID,
		CustomerName: row.CustomerName,
		Mobile:       row.Mobile,
		Email:        row.Email,
		Address:      row.Address,
		Service:      row.Service,
		Amount:       numericToString(row.Amount),
		PaymentMode:  row.PaymentMode,
		OrderDate:    row.OrderDate,
		Status:       row.Status,
	}
}
