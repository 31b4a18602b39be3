package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/example/nchub/pkg/models"
)

// defaultOwner keys the single-installation progress and snapshot upserts.
// There is no multi-user model; the owner column exists so the remote schema
// can grow one later.
const defaultOwner = "default"

// Remote is the Postgres-backed backend.
type Remote struct {
	db    *sqlx.DB
	log   *zap.Logger
	owner string
}

// NewRemote connects to the configured Postgres endpoint and ensures the
// schema exists.
func NewRemote(databaseURL string, log *zap.Logger) (*Remote, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	r := &Remote{db: db, log: log, owner: defaultOwner}
	if err := r.initializeSchema(); err != nil {
		return nil, err
	}
	return r, nil
}

// Close closes the database connection.
func (r *Remote) Close() error {
	return r.db.Close()
}

func (r *Remote) initializeSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS learning_progress (
			owner_id   TEXT PRIMARY KEY,
			record     JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS custom_terminology (
			id         BIGSERIAL PRIMARY KEY,
			term       TEXT NOT NULL,
			definition TEXT NOT NULL DEFAULT '',
			framework  TEXT NOT NULL DEFAULT '',
			difficulty TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS notes (
			id         BIGSERIAL PRIMARY KEY,
			title      TEXT NOT NULL DEFAULT '',
			content    TEXT NOT NULL DEFAULT '',
			category   TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS saved_locations (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL,
			lat        DOUBLE PRECISION NOT NULL,
			lng        DOUBLE PRECISION NOT NULL,
			zoom       DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ui_snapshots (
			owner_id   TEXT PRIMARY KEY,
			snapshot   JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("initialize schema: %w", err)
		}
	}
	return nil
}

func (r *Remote) GetProgress(ctx context.Context) *models.ProgressRecord {
	var raw []byte
	err := r.db.GetContext(ctx, &raw,
		"SELECT record FROM learning_progress WHERE owner_id = $1", r.owner)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		r.log.Warn("get progress failed", zap.Error(err))
		return nil
	}

	var rec models.ProgressRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		r.log.Warn("progress record corrupt", zap.Error(err))
		return nil
	}
	return &rec
}

func (r *Remote) SaveProgress(ctx context.Context, rec models.ProgressRecord) {
	raw, err := json.Marshal(rec)
	if err != nil {
		r.log.Warn("marshal progress failed", zap.Error(err))
		return
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO learning_progress (owner_id, record) VALUES ($1, $2)
		ON CONFLICT (owner_id) DO UPDATE SET record = EXCLUDED.record, updated_at = NOW()
	`, r.owner, raw)
	if err != nil {
		r.log.Warn("save progress failed", zap.Error(err))
	}
}

func (r *Remote) GetCustomTerms(ctx context.Context) []models.CustomTerm {
	terms := []models.CustomTerm{}
	err := r.db.SelectContext(ctx, &terms, `
		SELECT id, term, definition, framework, difficulty, created_at
		FROM custom_terminology ORDER BY created_at DESC
	`)
	if err != nil {
		r.log.Warn("get custom terms failed", zap.Error(err))
		return []models.CustomTerm{}
	}
	return terms
}

func (r *Remote) AddCustomTerm(ctx context.Context, term models.CustomTerm) *models.CustomTerm {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO custom_terminology (term, definition, framework, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, term.Term, term.Definition, term.Framework, term.Difficulty).
		Scan(&term.ID, &term.CreatedAt)
	if err != nil {
		r.log.Warn("add custom term failed", zap.Error(err))
		return nil
	}
	return &term
}

func (r *Remote) DeleteCustomTerm(ctx context.Context, id int64) {
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM custom_terminology WHERE id = $1", id); err != nil {
		r.log.Warn("delete custom term failed", zap.Int64("id", id), zap.Error(err))
	}
}

func (r *Remote) GetNotes(ctx context.Context) []models.Note {
	notes := []models.Note{}
	err := r.db.SelectContext(ctx, &notes, `
		SELECT id, title, content, category, created_at, updated_at
		FROM notes ORDER BY updated_at DESC
	`)
	if err != nil {
		r.log.Warn("get notes failed", zap.Error(err))
		return []models.Note{}
	}
	return notes
}

func (r *Remote) SaveNote(ctx context.Context, note models.Note) *models.Note {
	var err error
	if note.ID == 0 {
		err = r.db.QueryRowContext(ctx, `
			INSERT INTO notes (title, content, category)
			VALUES ($1, $2, $3)
			RETURNING id, created_at, updated_at
		`, note.Title, note.Content, note.Category).
			Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
	} else {
		err = r.db.QueryRowContext(ctx, `
			INSERT INTO notes (id, title, content, category)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE
				SET title = EXCLUDED.title,
				    content = EXCLUDED.content,
				    category = EXCLUDED.category,
				    updated_at = NOW()
			RETURNING id, created_at, updated_at
		`, note.ID, note.Title, note.Content, note.Category).
			Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
	}
	if err != nil {
		r.log.Warn("save note failed", zap.Error(err))
		return nil
	}
	return &note
}

func (r *Remote) GetSavedLocations(ctx context.Context) []models.SavedLocation {
	locs := []models.SavedLocation{}
	err := r.db.SelectContext(ctx, &locs, `
		SELECT id, name, lat, lng, zoom, created_at
		FROM saved_locations ORDER BY created_at DESC
	`)
	if err != nil {
		r.log.Warn("get saved locations failed", zap.Error(err))
		return []models.SavedLocation{}
	}
	return locs
}

func (r *Remote) AddSavedLocation(ctx context.Context, loc models.SavedLocation) *models.SavedLocation {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO saved_locations (name, lat, lng, zoom)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, loc.Name, loc.Lat, loc.Lng, loc.Zoom).
		Scan(&loc.ID, &loc.CreatedAt)
	if err != nil {
		r.log.Warn("add saved location failed", zap.Error(err))
		return nil
	}
	return &loc
}

func (r *Remote) GetSnapshot(ctx context.Context) *models.Snapshot {
	var raw []byte
	err := r.db.GetContext(ctx, &raw,
		"SELECT snapshot FROM ui_snapshots WHERE owner_id = $1", r.owner)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		r.log.Warn("get snapshot failed", zap.Error(err))
		return nil
	}

	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		r.log.Warn("snapshot corrupt", zap.Error(err))
		return nil
	}
	return &snap
}

func (r *Remote) SaveSnapshot(ctx context.Context, snap models.Snapshot) {
	raw, err := json.Marshal(snap)
	if err != nil {
		r.log.Warn("marshal snapshot failed", zap.Error(err))
		return
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO ui_snapshots (owner_id, snapshot) VALUES ($1, $2)
		ON CONFLICT (owner_id) DO UPDATE SET snapshot = EXCLUDED.snapshot, updated_at = NOW()
	`, r.owner, raw)
	if err != nil {
		r.log.Warn("save snapshot failed", zap.Error(err))
	}
}
