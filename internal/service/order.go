package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bekabe-press/api/internal/database"
	"github.com/bekabe-press/api/internal/enum"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Errors returned by the order service.
var (
	ErrNoServices     = errors.New("at least one service is required")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrMissingOrderID = errors.New("order_id is required")
)

// OrderStore defines the DB methods needed by the order lifecycle.
// Satisfied by *database.Queries; narrow interface for testability.
type OrderStore interface {
	CreateOrder(ctx context.Context, arg database.CreateOrderParams) (database.Order, error)
	CreatePayment(ctx context.Context, arg database.CreatePaymentParams) (database.Payment, error)
	UpdateOrderStatus(ctx context.Context, arg database.UpdateOrderStatusParams) (int64, error)
}

// CreateOrdersRequest is the validated input of the add-order form: one
// order row is created per selected service, all sharing the same amount
// and date.
type CreateOrdersRequest struct {
	CustomerID int64
	Services   []string
	Amount     string
	OrderDate  string
}

// OrderService owns order status transitions and keeps the companion
// payment rows in step at creation time.
type OrderService struct {
	store OrderStore
}

func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{store: store}
}

// CreateOrders inserts one order + payment pair per selected service. New
// orders start as pending/Unpaid and their payment rows as unpaid.
//
// The pairs are inserted independently, without an enclosing transaction: a
// failure mid-loop leaves the earlier pairs committed, exactly as the
// legacy system behaved. Callers get the orders created so far along with
// the error.
func (s *OrderService) CreateOrders(ctx context.Context, req CreateOrdersRequest) ([]database.Order, error) {
	if len(req.Services) == 0 {
		return nil, ErrNoServices
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, ErrInvalidAmount
	}
	numAmount := toNumeric(amount)

	var created []database.Order
	for _, svc := range req.Services {
		order, err := s.store.CreateOrder(ctx, database.CreateOrderParams{
			CustomerID:  req.CustomerID,
			Service:     svc,
			OrderDate:   req.OrderDate,
			Amount:      numAmount,
			PaymentMode: enum.PaymentModeUnpaid,
			Status:      enum.OrderStatusPending,
		})
		if err != nil {
			return created, fmt.Errorf("create order for %q: %w", svc, err)
		}
		if _, err := s.store.CreatePayment(ctx, database.CreatePaymentParams{
			OrderID:     order.ID,
			Amount:      numAmount,
			Paid:        0,
			PaymentDate: req.OrderDate,
		}); err != nil {
			return created, fmt.Errorf("create payment for order %d: %w", order.ID, err)
		}
		created = append(created, order)
	}
	return created, nil
}

// MarkCompleted sets an order's status to Completed. No prior-status check
// is made, so repeat calls are no-ops in effect; an unknown id affects zero
// rows and is not an error.
func (s *OrderService) MarkCompleted(ctx context.Context, orderID int64) error {
	_, err := s.store.UpdateOrderStatus(ctx, database.UpdateOrderStatusParams{
		ID:     orderID,
		Status: enum.OrderStatusCompleted,
	})
	return err
}

// UpdatePaymentStatus settles an order as Paid or Credit. Any other status
// is rejected before touching the database. The companion payment row's
// paid flag is deliberately left alone: the ledger views read order status
// only, and the legacy system never flipped the flag either.
func (s *OrderService) UpdatePaymentStatus(ctx context.Context, orderID int64, status string) error {
	if orderID == 0 {
		return ErrMissingOrderID
	}
	if !enum.IsSettlementStatus(status) {
		return ErrInvalidStatus
	}
	_, err := s.store.UpdateOrderStatus(ctx, database.UpdateOrderStatusParams{
		ID:     orderID,
		Status: status,
	})
	return err
}

func toNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric
	_ = n.Scan(d.String())
	return n
}
