package database

import "context"

const listUsers = `
SELECT id, username, password FROM users ORDER BY id
`

func (q *Queries) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := q.db.Query(ctx, listUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password); err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

const getUser = `
SELECT id, username, password FROM users WHERE id = $1
`

func (q *Queries) GetUser(ctx context.Context, id int64) (User, error) {
	var u User
	err := q.db.QueryRow(ctx, getUser, id).Scan(&u.ID, &u.Username, &u.Password)
	return u, err
}

const getUserByUsername = `
SELECT id, username, password FROM users WHERE username = $1 LIMIT 1
`

func (q *Queries) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var u User
	err := q.db.QueryRow(ctx, getUserByUsername, username).Scan(&u.ID, &u.Username, &u.Password)
	return u, err
}

const getUserByCredentials = `
SELECT id, username, password FROM users WHERE username = $1 AND password = $2 LIMIT 1
`

type GetUserByCredentialsParams struct {
	Username string
	Password string
}

func (q *Queries) GetUserByCredentials(ctx context.Context, arg GetUserByCredentialsParams) (User, error) {
	var u User
	err := q.db.QueryRow(ctx, getUserByCredentials, arg.Username, arg.Password).
		Scan(&u.ID, &u.Username, &u.Password)
	return u, err
}

const createUser = `
INSERT INTO users (username, password) VALUES ($1, $2)
RETURNING id, username, password
`

type CreateUserParams struct {
	Username string
	Password string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	var u User
	err := q.db.QueryRow(ctx, createUser, arg.Username, arg.Password).
		Scan(&u.ID, &u.Username, &u.Password)
	return u, err
}

const updateUser = `
UPDATE users SET username = $2, password = $3 WHERE id = $1
`

type UpdateUserParams struct {
	ID       int64
	Username string
	Password string
}

func (q *Queries) UpdateUser(ctx context.Context, arg UpdateUserParams) error {
	_, err := q.db.Exec(ctx, updateUser, arg.ID, arg.Username, arg.Password)
	return err
}

const deleteUser = `
DELETE FROM users WHERE id = $1
`

func (q *Queries) DeleteUser(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteUser, id)
	return err
}
