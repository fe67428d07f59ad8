package database

import "context"

const listCustomers = `
SELECT id, name, contact, mobile, email, address FROM customers ORDER BY id
`

func (q *Queries) ListCustomers(ctx context.Context) ([]Customer, error) {
	rows, err := q.db.Query(ctx, listCustomers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Contact, &c.Mobile, &c.Email, &c.Address); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

const getCustomer = `
SELECT id, name, contact, mobile, email, address FROM customers WHERE id = $1
`

func (q *Queries) GetCustomer(ctx context.Context, id int64) (Customer, error) {
	var c Customer
	err := q.db.QueryRow(ctx, getCustomer, id).
		Scan(&c.ID, &c.Name, &c.Contact, &c.Mobile, &c.Email, &c.Address)
	return c, err
}

const createCustomer = `
INSERT INTO customers (name, mobile, email, address) VALUES ($1, $2, $3, $4)
RETURNING id, name, contact, mobile, email, address
`

type CreateCustomerParams struct {
	Name    string
	Mobile  string
	Email   string
	Address string
}

func (q *Queries) CreateCustomer(ctx context.Context, arg CreateCustomerParams) (Customer, error) {
	var c Customer
	err := q.db.QueryRow(ctx, createCustomer, arg.Name, arg.Mobile, arg.Email, arg.Address).
		Scan(&c.ID, &c.Name, &c.Contact, &c.Mobile, &c.Email, &c.Address)
	return c, err
}

const updateCustomer = `
UPDATE customers SET name = $2, mobile = $3, email = $4, address = $5 WHERE id = $1
`

type UpdateCustomerParams struct {
	ID      int64
	Name    string
	Mobile  string
	Email   string
	Address string
}

func (q *Queries) UpdateCustomer(ctx context.Context, arg UpdateCustomerParams) error {
	_, err := q.db.Exec(ctx, updateCustomer, arg.ID, arg.Name, arg.Mobile, arg.Email, arg.Address)
	return err
}

const deleteCustomer = `
DELETE FROM customers WHERE id = $1
`

// DeleteCustomer removes the customer row only. Orders keep their
// customer_id and become orphans; the legacy system behaves the same way.
func (q *Queries) DeleteCustomer(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteCustomer, id)
	return err
}
