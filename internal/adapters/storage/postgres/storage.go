package postgres

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/adapters/storage/postgres/db"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

type PostgresStore struct {
	pool *pgxpool.Pool
	q    *db.Queries
}

func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &PostgresStore{
		pool: pool,
		q:    db.New(pool),
	}, nil
}

// Migrate creates the tables if they do not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Ping reports whether the database still answers.
func (s *PostgresStore) Ping(ctx context.Context) error {
	if s.pool == nil {
		return errors.New("store is closed")
	}
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// -- World Methods --

func (s *PostgresStore) InsertWorld(ctx context.Context, w *domain.WorldRecord) error {
	fields, err := json.Marshal(w.Attributes.ToMap())
	if err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}

	err = s.q.InsertWorld(ctx, db.InsertWorldParams{
		ID:           w.ID,
		Name:         w.Name,
		Type:         string(w.Type),
		Description:  w.Description,
		Status:       string(w.Status),
		CreatedAt:    timestamptz(w.CreatedAt),
		CreatedBy:    text(w.CreatedBy),
		CreatorEmail: text(w.CreatorEmail),
		Locked:       w.Locked,
		Fields:       fields,
		PositionX:    w.Position.X,
		PositionY:    w.Position.Y,
		Color:        string(w.Color),
	})
	if err != nil {
		return fmt.Errorf("insert world: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetWorld(ctx context.Context, id string) (*domain.WorldRecord, error) {
	row, err := s.q.GetWorld(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get world: %w", err)
	}
	return toDomain(row)
}

func (s *PostgresStore) ListWorlds(ctx context.Context, status domain.Status, ascending bool) ([]domain.WorldRecord, error) {
	var rows []db.World
	var err error
	if ascending {
		rows, err = s.q.ListWorldsOldestFirst(ctx, string(status))
	} else {
		rows, err = s.q.ListWorldsNewestFirst(ctx, string(status))
	}
	if err != nil {
		return nil, fmt.Errorf("list worlds: %w", err)
	}

	result := make([]domain.WorldRecord, 0, len(rows))
	for _, row := range rows {
		w, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		result = append(result, *w)
	}
	return result, nil
}

func (s *PostgresStore) CountWorlds(ctx context.Context, status domain.Status) (int, error) {
	n, err := s.q.CountWorlds(ctx, string(status))
	if err != nil {
		return 0, fmt.Errorf("count worlds: %w", err)
	}
	return int(n), nil
}

func (s *PostgresStore) SetStatus(ctx context.Context, id string, status domain.Status) (*domain.WorldRecord, error) {
	if !domain.StatusPending.CanTransition(status) {
		return nil, fmt.Errorf("invalid target status %q", status)
	}

	row, err := s.q.SetPendingWorldStatus(ctx, db.SetPendingWorldStatusParams{ID: id, Status: string(status)})
	if err == nil {
		return toDomain(row)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("set world status: %w", err)
	}

	exists, err := s.q.WorldExists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check world: %w", err)
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrAlreadyModerated
}

func (s *PostgresStore) DeleteWorld(ctx context.Context, id string) error {
	tag, err := s.q.DeleteWorld(ctx, id)
	if err != nil {
		return fmt.Errorf("delete world: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) AppendContribution(ctx context.Context, worldID string, c domain.Contribution) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode contribution: %w", err)
	}

	tag, err := s.q.AppendContribution(ctx, db.AppendContributionParams{ID: worldID, Contribution: payload})
	if err != nil {
		return fmt.Errorf("append contribution: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) UpsertWorld(ctx context.Context, w *domain.WorldRecord) error {
	row, err := fromDomain(w)
	if err != nil {
		return err
	}
	if err := s.q.UpsertWorld(ctx, row); err != nil {
		return fmt.Errorf("upsert world: %w", err)
	}
	return nil
}

// -- Admin Methods --

func (s *PostgresStore) IsAdmin(ctx context.Context, userID string) (bool, error) {
	ok, err := s.q.IsAdmin(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("is admin: %w", err)
	}
	return ok, nil
}

func (s *PostgresStore) AddAdmin(ctx context.Context, userID string) error {
	if err := s.q.AddAdmin(ctx, userID); err != nil {
		return fmt.Errorf("add admin: %w", err)
	}
	return nil
}

func (s *PostgresStore) RemoveAdmin(ctx context.Context, userID string) error {
	if err := s.q.RemoveAdmin(ctx, userID); err != nil {
		return fmt.Errorf("remove admin: %w", err)
	}
	return nil
}

// -- Mapping --

func toDomain(row db.World) (*domain.WorldRecord, error) {
	fields := map[string]string{}
	if len(row.Fields) > 0 {
		if err := json.Unmarshal(row.Fields, &fields); err != nil {
			return nil, fmt.Errorf("decode fields of %s: %w", row.ID, err)
		}
	}

	contributions := []domain.Contribution{}
	if len(row.Contributions) > 0 {
		if err := json.Unmarshal(row.Contributions, &contributions); err != nil {
			return nil, fmt.Errorf("decode contributions of %s: %w", row.ID, err)
		}
	}

	w := &domain.WorldRecord{
		ID:            row.ID,
		Name:          row.Name,
		Type:          domain.ParseWorldType(row.Type),
		Description:   row.Description,
		Status:        domain.Status(row.Status),
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
		CreatedBy:     row.CreatedBy.String,
		CreatorEmail:  row.CreatorEmail.String,
		Locked:        row.Locked,
		Attributes:    domain.AttributesFromMap(fields),
		Position:      domain.Position{X: row.PositionX, Y: row.PositionY},
		Color:         domain.Color(row.Color),
		Contributions: contributions,
	}
	if row.ModeratedAt.Valid {
		t := row.ModeratedAt.Time
		w.ModeratedAt = &t
	}
	return w, nil
}

func fromDomain(w *domain.WorldRecord) (db.World, error) {
	fields, err := json.Marshal(w.Attributes.ToMap())
	if err != nil {
		return db.World{}, fmt.Errorf("encode fields: %w", err)
	}
	contributions := w.Contributions
	if contributions == nil {
		contributions = []domain.Contribution{}
	}
	contribs, err := json.Marshal(contributions)
	if err != nil {
		return db.World{}, fmt.Errorf("encode contributions: %w", err)
	}

	row := db.World{
		ID:            w.ID,
		Name:          w.Name,
		Type:          string(w.Type),
		Description:   w.Description,
		Status:        string(w.Status),
		CreatedAt:     timestamptz(w.CreatedAt),
		UpdatedAt:     timestamptz(w.UpdatedAt),
		CreatedBy:     text(w.CreatedBy),
		CreatorEmail:  text(w.CreatorEmail),
		Locked:        w.Locked,
		Fields:        fields,
		PositionX:     w.Position.X,
		PositionY:     w.Position.Y,
		Color:         string(w.Color),
		Contributions: contribs,
	}
	if w.ModeratedAt != nil {
		row.ModeratedAt = timestamptz(*w.ModeratedAt)
	}
	return row, nil
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func text(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
