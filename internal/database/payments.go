package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createPayment = `
INSERT INTO payments (order_id, amount, paid, payment_date)
VALUES ($1, $2, $3, $4)
RETURNING id, order_id, amount, paid, payment_date
`

type CreatePaymentParams struct {
	OrderID     int64
	Amount      pgtype.Numeric
	Paid        int32
	PaymentDate string
}

func (q *Queries) CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error) {
	var p Payment
	err := q.db.QueryRow(ctx, createPayment, arg.OrderID, arg.Amount, arg.Paid, arg.PaymentDate).
		Scan(&p.ID, &p.OrderID, &p.Amount, &p.Paid, &p.PaymentDate)
	return p, err
}

const listPaymentsByOrder = `
SELECT id, order_id, amount, paid, payment_date FROM payments WHERE order_id = $1 ORDER BY id
`

func (q *Queries) ListPaymentsByOrder(ctx context.Context, orderID int64) ([]Payment, error) {
	rows, err := q.db.Query(ctx, listPaymentsByOrder, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Payment
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.Amount, &p.Paid, &p.PaymentDate); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
