package db

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Admin struct {
	UserID    string
	CreatedAt pgtype.Timestamptz
}

type World struct {
	ID            string
	Name          string
	Type          string
	Description   string
	Status        string
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
	ModeratedAt   pgtype.Timestamptz
	CreatedBy     pgtype.Text
	CreatorEmail  pgtype.Text
	Locked        bool
	Fields        []byte
	PositionX     float64
	PositionY     float64
	Color         string
	Contributions []byte
}
