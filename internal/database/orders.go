package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createOrder = `
INSERT INTO orders (customer_id, service, order_date, amount, payment_mode, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, customer_id, service, order_date, amount, payment_mode, status
`

type CreateOrderParams struct {
	CustomerID  int64
	Service     string
	OrderDate   string
	Amount      pgtype.Numeric
	PaymentMode string
	Status      string
}

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	var o Order
	err := q.db.QueryRow(ctx, createOrder,
		arg.CustomerID, arg.Service, arg.OrderDate, arg.Amount, arg.PaymentMode, arg.Status).
		Scan(&o.ID, &o.CustomerID, &o.Service, &o.OrderDate, &o.Amount, &o.PaymentMode, &o.Status)
	return o, err
}

const updateOrderStatus = `
UPDATE orders SET status = $2 WHERE id = $1
`

type UpdateOrderStatusParams struct {
	ID     int64
	Status string
}

// UpdateOrderStatus sets the status unconditionally. An unknown id affects
// zero rows and is not an error; the caller gets the affected count.
func (q *Queries) UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (int64, error) {
	tag, err := q.db.Exec(ctx, updateOrderStatus, arg.ID, arg.Status)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listPendingOrders = `
SELECT o.id, c.name, c.contact, c.mobile, c.email, c.address,
       o.service, o.order_date, o.status
FROM orders o
JOIN customers c ON o.customer_id = c.id
WHERE o.status = $1
ORDER BY o.id
`

type PendingOrderRow struct {
	OrderID      int64
	CustomerName string
	Contact      pgtype.Text
	Mobile       string
	Email        string
	Address      string
	Service      string
	OrderDate    string
	Status       string
}

func (q *Queries) ListPendingOrders(ctx context.Context, status string) ([]PendingOrderRow, error) {
	rows, err := q.db.Query(ctx, listPendingOrders, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PendingOrderRow
	for rows.Next() {
		var r PendingOrderRow
		if err := rows.Scan(&r.OrderID, &r.CustomerName, &r.Contact, &r.Mobile, &r.Email,
			&r.Address, &r.Service, &r.OrderDate, &r.Status); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const listCompletedOrders = `
SELECT o.id, c.name, o.service, o.amount, o.status, o.order_date
FROM orders o
JOIN customers c ON o.customer_id = c.id
WHERE o.status IN ('Completed', 'Paid', 'Credit')
ORDER BY o.id
`

type CompletedOrderRow struct {
	OrderID      int64
	CustomerName string
	Service      string
	Amount       pgtype.Numeric
	Status       string
	OrderDate    string
}

func (q *Queries) ListCompletedOrders(ctx context.Context) ([]CompletedOrderRow, error) {
	rows, err := q.db.Query(ctx, listCompletedOrders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CompletedOrderRow
	for rows.Next() {
		var r CompletedOrderRow
		if err := rows.Scan(&r.OrderID, &r.CustomerName, &r.Service, &r.Amount, &r.Status, &r.OrderDate); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const getOrderDetails = `
SELECT o.id, c.name, c.mobile, c.email, c.address,
       o.service, o.amount, o.payment_mode, o.order_date, o.status
FROM orders o
JOIN customers c ON o.customer_id = c.id
WHERE o.id = $1
`

type OrderDetailsRow struct {
	OrderID      int64
	CustomerName string
	Mobile       string
	Email        string
	Address      string
	Service      string
	Amount       pgtype.Numeric
	PaymentMode  string
	OrderDate    string
	Status       string
}

func (q *Queries) GetOrderDetails(ctx context.Context, id int64) (OrderDetailsRow, error) {
	var r OrderDetailsRow
	err := q.db.QueryRow(ctx, getOrderDetails, id).
		Scan(&r.OrderID, &r.CustomerName, &r.Mobile, &r.Email, &r.Address,
			&r.Service, &r.Amount, &r.PaymentMode, &r.OrderDate, &r.Status)
	return r, err
}

const listCustomersByOrderStatus = `
SELECT DISTINCT c.id, c.name, c.mobile, c.email, c.address
FROM customers c
JOIN orders o ON c.id = o.customer_id
WHERE o.status = $1
ORDER BY c.id
`

type LedgerCustomerRow struct {
	ID      int64
	Name    string
	Mobile  string
	Email   string
	Address string
}

// ListCustomersByOrderStatus backs the credit-customers and paid-customers
// ledger views: distinct customers holding at least one order in the given
// status.
func (q *Queries) ListCustomersByOrderStatus(ctx context.Context, status string) ([]LedgerCustomerRow, error) {
	rows, err := q.db.Query(ctx, listCustomersByOrderStatus, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []LedgerCustomerRow
	for rows.Next() {
		var r LedgerCustomerRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Mobile, &r.Email, &r.Address); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const countCustomers = `SELECT COUNT(*) FROM customers`
const countEmployees = `SELECT COUNT(*) FROM employees`
const countPendingOrders = `SELECT COUNT(*) FROM orders WHERE status = 'pending'`
const countCompletedOrders = `SELECT COUNT(*) FROM orders WHERE status IN ('Completed', 'Paid', 'Credit')`
const countCreditCustomers = `
SELECT COUNT(DISTINCT c.id)
FROM customers c
JOIN orders o ON c.id = o.customer_id
WHERE o.status = 'Credit'
`

// DashboardCounts carries the counters shown on the dashboard page.
type DashboardCounts struct {
	Customers       int64
	PendingOrders   int64
	CompletedOrders int64
	Employees       int64
	CreditCustomers int64
}

func (q *Queries) GetDashboardCounts(ctx context.Context) (DashboardCounts, error) {
	var d DashboardCounts
	if err := q.db.QueryRow(ctx, countCustomers).Scan(&d.Customers); err != nil {
		return d, err
	}
	if err := q.db.QueryRow(ctx, countPendingOrders).Scan(&d.PendingOrders); err != nil {
		return d, err
	}
	if err := q.db.QueryRow(ctx, countCompletedOrders).Scan(&d.CompletedOrders); err != nil {
		return d, err
	}
	if err := q.db.QueryRow(ctx, countEmployees).Scan(&d.Employees); err != nil {
		return d, err
	}
	if err := q.db.QueryRow(ctx, countCreditCustomers).Scan(&d.CreditCustomers); err != nil {
		return d, err
	}
	return d, nil
}
