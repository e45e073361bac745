package db

import (
	"context"
)

const isAdmin = `-- name: IsAdmin :one
SELECT EXISTS (SELECT 1 FROM admins WHERE user_id = $1)
`

func (q *Queries) IsAdmin(ctx context.Context, userID string) (bool, error) {
	row := q.db.QueryRow(ctx, isAdmin, userID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const addAdmin = `-- name: AddAdmin :exec
INSERT INTO admins (user_id) VALUES ($1)
ON CONFLICT (user_id) DO NOTHING
`

func (q *Queries) AddAdmin(ctx context.Context, userID string) error {
	_, err := q.db.Exec(ctx, addAdmin, userID)
	return err
}

const removeAdmin = `-- name: RemoveAdmin :exec
DELETE FROM admins WHERE user_id = $1
`

func (q *Queries) RemoveAdmin(ctx context.Context, userID string) error {
	_, err := q.db.Exec(ctx, removeAdmin, userID)
	return err
}
