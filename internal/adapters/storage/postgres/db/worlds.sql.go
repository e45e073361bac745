package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const worldColumns = `id, name, type, description, status, created_at, updated_at, moderated_at,
       created_by, creator_email, locked, fields, position_x, position_y, color, contributions`

func scanWorld(row interface{ Scan(...interface{}) error }) (World, error) {
	var i World
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Type,
		&i.Description,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.ModeratedAt,
		&i.CreatedBy,
		&i.CreatorEmail,
		&i.Locked,
		&i.Fields,
		&i.PositionX,
		&i.PositionY,
		&i.Color,
		&i.Contributions,
	)
	return i, err
}

const insertWorld = `-- name: InsertWorld :exec
INSERT INTO worlds (id, name, type, description, status, created_at, updated_at,
                    created_by, creator_email, locked, fields, position_x, position_y, color, contributions)
VALUES ($1, $2, $3, $4, $5, $6, $6, $7, $8, $9, $10, $11, $12, $13, '[]'::jsonb)
`

type InsertWorldParams struct {
	ID           string
	Name         string
	Type         string
	Description  string
	Status       string
	CreatedAt    pgtype.Timestamptz
	CreatedBy    pgtype.Text
	CreatorEmail pgtype.Text
	Locked       bool
	Fields       []byte
	PositionX    float64
	PositionY    float64
	Color        string
}

func (q *Queries) InsertWorld(ctx context.Context, arg InsertWorldParams) error {
	_, err := q.db.Exec(ctx, insertWorld,
		arg.ID,
		arg.Name,
		arg.Type,
		arg.Description,
		arg.Status,
		arg.CreatedAt,
		arg.CreatedBy,
		arg.CreatorEmail,
		arg.Locked,
		arg.Fields,
		arg.PositionX,
		arg.PositionY,
		arg.Color,
	)
	return err
}

const getWorld = `-- name: GetWorld :one
SELECT ` + worldColumns + `
FROM worlds
WHERE id = $1
`

func (q *Queries) GetWorld(ctx context.Context, id string) (World, error) {
	return scanWorld(q.db.QueryRow(ctx, getWorld, id))
}

const listWorldsOldestFirst = `-- name: ListWorldsOldestFirst :many
SELECT ` + worldColumns + `
FROM worlds
WHERE status = $1
ORDER BY created_at ASC, id ASC
`

const listWorldsNewestFirst = `-- name: ListWorldsNewestFirst :many
SELECT ` + worldColumns + `
FROM worlds
WHERE status = $1
ORDER BY created_at DESC, id ASC
`

func (q *Queries) ListWorldsOldestFirst(ctx context.Context, status string) ([]World, error) {
	return q.listWorlds(ctx, listWorldsOldestFirst, status)
}

func (q *Queries) ListWorldsNewestFirst(ctx context.Context, status string) ([]World, error) {
	return q.listWorlds(ctx, listWorldsNewestFirst, status)
}

func (q *Queries) listWorlds(ctx context.Context, query, status string) ([]World, error) {
	rows, err := q.db.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []World
	for rows.Next() {
		i, err := scanWorld(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countWorlds = `-- name: CountWorlds :one
SELECT count(*) FROM worlds WHERE status = $1
`

func (q *Queries) CountWorlds(ctx context.Context, status string) (int64, error) {
	row := q.db.QueryRow(ctx, countWorlds, status)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const setPendingWorldStatus = `-- name: SetPendingWorldStatus :one
UPDATE worlds
SET status = $2, moderated_at = now(), updated_at = now()
WHERE id = $1 AND status = 'pending'
RETURNING ` + worldColumns + `
`

type SetPendingWorldStatusParams struct {
	ID     string
	Status string
}

func (q *Queries) SetPendingWorldStatus(ctx context.Context, arg SetPendingWorldStatusParams) (World, error) {
	return scanWorld(q.db.QueryRow(ctx, setPendingWorldStatus, arg.ID, arg.Status))
}

const worldExists = `-- name: WorldExists :one
SELECT EXISTS (SELECT 1 FROM worlds WHERE id = $1)
`

func (q *Queries) WorldExists(ctx context.Context, id string) (bool, error) {
	row := q.db.QueryRow(ctx, worldExists, id)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const deleteWorld = `-- name: DeleteWorld :execresult
DELETE FROM worlds WHERE id = $1
`

func (q *Queries) DeleteWorld(ctx context.Context, id string) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, deleteWorld, id)
}

const appendContribution = `-- name: AppendContribution :execresult
UPDATE worlds
SET contributions = contributions || jsonb_build_array($2::jsonb), updated_at = now()
WHERE id = $1
`

type AppendContributionParams struct {
	ID           string
	Contribution []byte
}

func (q *Queries) AppendContribution(ctx context.Context, arg AppendContributionParams) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, appendContribution, arg.ID, arg.Contribution)
}

const upsertWorld = `-- name: UpsertWorld :exec
INSERT INTO worlds (id, name, type, description, status, created_at, updated_at, moderated_at,
                    created_by, creator_email, locked, fields, position_x, position_y, color, contributions)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    type = EXCLUDED.type,
    description = EXCLUDED.description,
    status = CASE WHEN worlds.status = 'pending' THEN EXCLUDED.status ELSE worlds.status END,
    updated_at = EXCLUDED.updated_at,
    moderated_at = CASE WHEN worlds.status = 'pending' THEN EXCLUDED.moderated_at ELSE worlds.moderated_at END,
    creator_email = EXCLUDED.creator_email,
    locked = EXCLUDED.locked,
    fields = EXCLUDED.fields,
    contributions = worlds.contributions || COALESCE((
        SELECT jsonb_agg(incoming)
        FROM jsonb_array_elements(EXCLUDED.contributions) AS incoming
        WHERE NOT EXISTS (
            SELECT 1 FROM jsonb_array_elements(worlds.contributions) AS stored
            WHERE stored->>'id' = incoming->>'id'
        )
    ), '[]'::jsonb)
`

func (q *Queries) UpsertWorld(ctx context.Context, arg World) error {
	_, err := q.db.Exec(ctx, upsertWorld,
		arg.ID,
		arg.Name,
		arg.Type,
		arg.Description,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
		arg.ModeratedAt,
		arg.CreatedBy,
		arg.CreatorEmail,
		arg.Locked,
		arg.Fields,
		arg.PositionX,
		arg.PositionY,
		arg.Color,
		arg.Contributions,
	)
	return err
}
