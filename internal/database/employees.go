package database

import "context"

const listEmployees = `
SELECT id, name, role, mobile, email, address FROM employees ORDER BY id
`

func (q *Queries) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := q.db.Query(ctx, listEmployees)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Role, &e.Mobile, &e.Email, &e.Address); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const getEmployee = `
SELECT id, name, role, mobile, email, address FROM employees WHERE id = $1
`

func (q *Queries) GetEmployee(ctx context.Context, id int64) (Employee, error) {
	var e Employee
	err := q.db.QueryRow(ctx, getEmployee, id).
		Scan(&e.ID, &e.Name, &e.Role, &e.Mobile, &e.Email, &e.Address)
	return e, err
}

const createEmployee = `
INSERT INTO employees (name, role, mobile, email, address) VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, role, mobile, email, address
`

type CreateEmployeeParams struct {
	Name    string
	Role    string
	Mobile  string
	Email   string
	Address string
}

func (q *Queries) CreateEmployee(ctx context.Context, arg CreateEmployeeParams) (Employee, error) {
	var e Employee
	err := q.db.QueryRow(ctx, createEmployee, arg.Name, arg.Role, arg.Mobile, arg.Email, arg.Address).
		Scan(&e.ID, &e.Name, &e.Role, &e.Mobile, &e.Email, &e.Address)
	return e, err
}

const updateEmployee = `
UPDATE employees SET name = $2, role = $3, mobile = $4, email = $5, address = $6 WHERE id = $1
`

type UpdateEmployeeParams struct {
	ID      int64
	Name    string
	Role    string
	Mobile  string
	Email   string
	Address string
}

func (q *Queries) UpdateEmployee(ctx context.Context, arg UpdateEmployeeParams) error {
	_, err := q.db.Exec(ctx, updateEmployee, arg.ID, arg.Name, arg.Role, arg.Mobile, arg.Email, arg.Address)
	return err
}

const deleteEmployee = `
DELETE FROM employees WHERE id = $1
`

func (q *Queries) DeleteEmployee(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteEmployee, id)
	return err
}
