package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/bekabe-press/api/internal/database"
	"github.com/go-chi/chi/v5"
)

// DashboardStore defines the database methods needed by the dashboard.
type DashboardStore interface {
	GetDashboardCounts(ctx context.Context) (database.DashboardCounts, error)
}

type DashboardHandler struct {
	store DashboardStore
}

func NewDashboardHandler(store DashboardStore) *DashboardHandler {
	return &DashboardHandler{store: store}
}

func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.Dashboard)
}

type dashboardPageData struct {
	TotalCustomers  int64
	PendingOrders   int64
	CompletedOrders int64
	Employees       int64
	CreditCustomers int64
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	counts, err := h.store.GetDashboardCounts(r.Context())
	if err != nil {
		log.Printf("ERROR: dashboard counts: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	render(w, "dashboard.html", dashboardPageData{
		TotalCustomers:  counts.Customers,
		PendingOrders:   counts.PendingOrders,
		CompletedOrders: counts.CompletedOrders,
		Employees:       counts.Employees,
		CreditCustomers: counts.CreditCustomers,
	})
}
