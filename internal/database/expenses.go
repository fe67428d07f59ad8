package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

const createExpense = `
INSERT INTO expenses (amount, description, date) VALUES ($1, $2, $3)
RETURNING id, amount, description, date
`

type CreateExpenseParams struct {
	Amount      pgtype.Numeric
	Description string
	Date        string
}

func (q *Queries) CreateExpense(ctx context.Context, arg CreateExpenseParams) (Expense, error) {
	var e Expense
	err := q.db.QueryRow(ctx, createExpense, arg.Amount, arg.Description, arg.Date).
		Scan(&e.ID, &e.Amount, &e.Description, &e.Date)
	return e, err
}

// SearchExpensesParams mirrors the legacy filter semantics: ExactDate (ISO,
// already converted from DD/MM/YYYY by the caller) wins over the Search
// substring; the date range applies on top of either.
type SearchExpensesParams struct {
	ExactDate string
	Search    string
	StartDate string
	EndDate   string
}

func (q *Queries) SearchExpenses(ctx context.Context, arg SearchExpensesParams) ([]Expense, error) {
	sql := `SELECT id, amount, description, date FROM expenses WHERE 1=1`
	var args []interface{}
	if arg.ExactDate != "" {
		args = append(args, arg.ExactDate)
		sql += fmt.Sprintf(" AND date = $%d", len(args))
	} else if arg.Search != "" {
		args = append(args, "%"+arg.Search+"%")
		sql += fmt.Sprintf(" AND description LIKE $%d", len(args))
	}
	if arg.StartDate != "" {
		args = append(args, arg.StartDate)
		sql += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if arg.EndDate != "" {
		args = append(args, arg.EndDate)
		sql += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	sql += " ORDER BY id"

	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Expense
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.Amount, &e.Description, &e.Date); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const listExpensesByDateDesc = `
SELECT id, amount, description, date FROM expenses ORDER BY date DESC
`

func (q *Queries) ListExpensesByDateDesc(ctx context.Context) ([]Expense, error) {
	rows, err := q.db.Query(ctx, listExpensesByDateDesc)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Expense
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.Amount, &e.Description, &e.Date); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const deleteExpense = `
DELETE FROM expenses WHERE id = $1
`

func (q *Queries) DeleteExpense(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteExpense, id)
	return err
}
