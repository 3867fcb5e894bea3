package models

import (
	"context"
)

const userColumns = `id, username, password, nick_name, email, avatar, phone, is_admin, is_frozen, create_time, update_time`

func scanUser(row interface{ Scan(...any) error }) (User, error) {
	var i User
	err := row.Scan(
		&i.ID,
		&i.Username,
		&i.Password,
		&i.NickName,
		&i.Email,
		&i.Avatar,
		&i.Phone,
		&i.IsAdmin,
		&i.IsFrozen,
		&i.CreateTime,
		&i.UpdateTime,
	)
	return i, err
}

const findUser = `-- name: FindUser :one
SELECT ` + userColumns + `
FROM users
WHERE ($1::bigint IS NULL OR id = $1)
  AND ($2::text IS NULL OR username = $2)
  AND ($3::boolean IS NULL OR is_admin = $3)
ORDER BY id
LIMIT 1
`

// FindUserParams nil 字段不参与过滤
type FindUserParams struct {
	ID       *int64
	Username *string
	IsAdmin  *bool
}

func (q *Queries) FindUser(ctx context.Context, arg FindUserParams) (User, error) {
	row := q.db.QueryRow(ctx, findUser, arg.ID, arg.Username, arg.IsAdmin)
	return scanUser(row)
}

const createUser = `-- name: CreateUser :one
INSERT INTO users (username, password, nick_name, email, avatar, phone, is_admin, is_frozen)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + userColumns + `
`

type CreateUserParams struct {
	Username string
	Password string
	NickName string
	Email    string
	Avatar   string
	Phone    string
	IsAdmin  bool
	IsFrozen bool
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, createUser,
		arg.Username,
		arg.Password,
		arg.NickName,
		arg.Email,
		arg.Avatar,
		arg.Phone,
		arg.IsAdmin,
		arg.IsFrozen,
	)
	return scanUser(row)
}

const updateUser = `-- name: UpdateUser :one
UPDATE users
SET username = $2,
    password = $3,
    nick_name = $4,
    email = $5,
    avatar = $6,
    phone = $7,
    is_admin = $8,
    is_frozen = $9,
    update_time = now()
WHERE id = $1
RETURNING ` + userColumns + `
`

type UpdateUserParams struct {
	ID       int64
	Username string
	Password string
	NickName string
	Email    string
	Avatar   string
	Phone    string
	IsAdmin  bool
	IsFrozen bool
}

func (q *Queries) UpdateUser(ctx context.Context, arg UpdateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, updateUser,
		arg.ID,
		arg.Username,
		arg.Password,
		arg.NickName,
		arg.Email,
		arg.Avatar,
		arg.Phone,
		arg.IsAdmin,
		arg.IsFrozen,
	)
	return scanUser(row)
}
