package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/example/nchub/pkg/models"
)

// Namespaced document keys for the local store, one JSON document per
// collection plus the reduced snapshot.
const (
	keyProgress  = "nc-hub-progress"
	keyTerms     = "nc-hub-terms"
	keyNotes     = "nc-hub-notes"
	keyLocations = "nc-hub-locations"
	keySnapshot  = "nc-hub-storage"
)

// Local is the on-device fallback backend: a sqlite key/value table holding
// one JSON document per collection. Writes fully replace the prior document.
type Local struct {
	db  *sqlx.DB
	log *zap.Logger
	now func() time.Time
}

// NewLocal opens (creating if needed) the sqlite document store at path.
func NewLocal(path string, log *zap.Logger) (*Local, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	// sqlite does not support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		return nil, fmt.Errorf("init local schema: %w", err)
	}

	return &Local{db: db, log: log, now: time.Now}, nil
}

// Close closes the underlying store.
func (l *Local) Close() error {
	return l.db.Close()
}

func (l *Local) readDoc(ctx context.Context, key string, out any) bool {
	var raw string
	err := l.db.GetContext(ctx, &raw, "SELECT value FROM documents WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		l.log.Warn("local read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		l.log.Warn("local document corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (l *Local) writeDoc(ctx context.Context, key string, doc any) {
	raw, err := json.Marshal(doc)
	if err != nil {
		l.log.Warn("local marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	_, err = l.db.ExecContext(ctx, `
		INSERT INTO documents (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, key, string(raw))
	if err != nil {
		l.log.Warn("local write failed", zap.String("key", key), zap.Error(err))
	}
}

func (l *Local) GetProgress(ctx context.Context) *models.ProgressRecord {
	var rec models.ProgressRecord
	if !l.readDoc(ctx, keyProgress, &rec) {
		return nil
	}
	return &rec
}

func (l *Local) SaveProgress(ctx context.Context, rec models.ProgressRecord) {
	l.writeDoc(ctx, keyProgress, rec)
}

func (l *Local) GetCustomTerms(ctx context.Context) []models.CustomTerm {
	terms := []models.CustomTerm{}
	l.readDoc(ctx, keyTerms, &terms)
	return terms
}

func (l *Local) AddCustomTerm(ctx context.Context, term models.CustomTerm) *models.CustomTerm {
	now := l.now()
	term.ID = now.UnixMilli()
	term.CreatedAt = now

	terms := append([]models.CustomTerm{term}, l.GetCustomTerms(ctx)...)
	l.writeDoc(ctx, keyTerms, terms)
	return &term
}

func (l *Local) DeleteCustomTerm(ctx context.Context, id int64) {
	terms := l.GetCustomTerms(ctx)
	kept := terms[:0]
	for _, t := range terms {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	l.writeDoc(ctx, keyTerms, kept)
}

func (l *Local) GetNotes(ctx context.Context) []models.Note {
	notes := []models.Note{}
	l.readDoc(ctx, keyNotes, &notes)
	return notes
}

func (l *Local) SaveNote(ctx context.Context, note models.Note) *models.Note {
	now := l.now()
	notes := l.GetNotes(ctx)

	if note.ID != 0 {
		for i := range notes {
			if notes[i].ID == note.ID {
				note.CreatedAt = notes[i].CreatedAt
				note.UpdatedAt = now
				notes[i] = note
				l.writeDoc(ctx, keyNotes, notes)
				return &note
			}
		}
	}

	note.ID = now.UnixMilli()
	note.CreatedAt = now
	note.UpdatedAt = now
	notes = append([]models.Note{note}, notes...)
	l.writeDoc(ctx, keyNotes, notes)
	return &note
}

func (l *Local) GetSavedLocations(ctx context.Context) []models.SavedLocation {
	locs := []models.SavedLocation{}
	l.readDoc(ctx, keyLocations, &locs)
	return locs
}

func (l *Local) AddSavedLocation(ctx context.Context, loc models.SavedLocation) *models.SavedLocation {
	now := l.now()
	loc.ID = now.UnixMilli()
	loc.CreatedAt = now

	locs := append([]models.SavedLocation{loc}, l.GetSavedLocations(ctx)...)
	l.writeDoc(ctx, keyLocations, locs)
	return &loc
}

func (l *Local) GetSnapshot(ctx context.Context) *models.Snapshot {
	var snap models.Snapshot
	if !l.readDoc(ctx, keySnapshot, &snap) {
		return nil
	}
	return &snap
}

func (l *Local) SaveSnapshot(ctx context.Context, snap models.Snapshot) {
	l.writeDoc(ctx, keySnapshot, snap)
}
