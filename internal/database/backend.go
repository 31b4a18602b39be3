// Package database implements the persistence backend behind the state
// store: four durable collections plus a reduced snapshot document, served by
// either a shared Postgres store or an on-device sqlite fallback.
//
// Every operation is deliberately non-failing: remote errors are caught at
// this boundary, logged, and degraded to a nil/empty result so the UI is
// never blocked on persistence. Callers must treat absence as "not yet
// initialized", not as a fault.
package database

import (
	"context"

	"github.com/example/nchub/pkg/models"
)

// Backend is the storage contract shared by the remote and local modes. The
// mode is chosen once at startup and injected; callers never know which is
// active.
type Backend interface {
	// GetProgress returns the stored progress record, or nil when none has
	// been written yet.
	GetProgress(ctx context.Context) *models.ProgressRecord
	// SaveProgress fully replaces the stored record (remote mode upserts by
	// owner identity).
	SaveProgress(ctx context.Context, rec models.ProgressRecord)

	GetCustomTerms(ctx context.Context) []models.CustomTerm
	// AddCustomTerm inserts the term and returns the stored entity with its
	// assigned id and created_at, or nil when the insert was lost.
	AddCustomTerm(ctx context.Context, term models.CustomTerm) *models.CustomTerm
	DeleteCustomTerm(ctx context.Context, id int64)

	GetNotes(ctx context.Context) []models.Note
	// SaveNote upserts by id: a zero id creates a new record with a fresh id,
	// a matching id merges fields and refreshes updated_at.
	SaveNote(ctx context.Context, note models.Note) *models.Note

	GetSavedLocations(ctx context.Context) []models.SavedLocation
	AddSavedLocation(ctx context.Context, loc models.SavedLocation) *models.SavedLocation

	GetSnapshot(ctx context.Context) *models.Snapshot
	SaveSnapshot(ctx context.Context, snap models.Snapshot)

	Close() error
}
