package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/nchub/pkg/models"
)

func newTestLocal(t *testing.T) *Local {
	t.Helper()
	l, err := NewLocal(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func TestLocalProgressRoundTrip(t *testing.T) {
	l := newTestLocal(t)
	ctx := context.Background()

	assert.Nil(t, l.GetProgress(ctx))

	rec := models.DefaultProgress("2024-01-10")
	rec.ConceptsLearned = 3
	rec.FrameworksExplored = []string{"TNFD"}
	rec.QuizScores = []float64{0.8}
	l.SaveProgress(ctx, rec)

	got := l.GetProgress(ctx)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)

	// Writes fully replace the stored document.
	rec.ConceptsLearned = 0
	rec.FrameworksExplored = []string{}
	l.SaveProgress(ctx, rec)
	got = l.GetProgress(ctx)
	require.NotNil(t, got)
	assert.Equal(t, 0, got.ConceptsLearned)
	assert.Empty(t, got.FrameworksExplored)
}

func TestLocalCustomTermsPrependAndDelete(t *testing.T) {
	l := newTestLocal(t)
	ctx := context.Background()

	first := l.AddCustomTerm(ctx, models.CustomTerm{Term: "rewilding", Definition: "..."})
	require.NotNil(t, first)
	assert.NotZero(t, first.ID)

	l.now = func() time.Time { return time.Now().Add(time.Second) }
	second := l.AddCustomTerm(ctx, models.CustomTerm{Term: "natural capital", Definition: "..."})
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)

	terms := l.GetCustomTerms(ctx)
	require.Len(t, terms, 2)
	assert.Equal(t, "natural capital", terms[0].Term)

	l.DeleteCustomTerm(ctx, first.ID)
	terms = l.GetCustomTerms(ctx)
	require.Len(t, terms, 1)
	assert.Equal(t, second.ID, terms[0].ID)
}

func TestLocalSaveNoteInsertAndUpdate(t *testing.T) {
	l := newTestLocal(t)
	ctx := context.Background()

	created := l.SaveNote(ctx, models.Note{Title: "Site visit", Content: "draft", Category: "fieldwork"})
	require.NotNil(t, created)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	l.now = func() time.Time { return time.Now().Add(time.Hour) }
	updated := l.SaveNote(ctx, models.Note{ID: created.ID, Title: "Site visit", Content: "final", Category: "fieldwork"})
	require.NotNil(t, updated)

	notes := l.GetNotes(ctx)
	require.Len(t, notes, 1)
	assert.Equal(t, "final", notes[0].Content)
	assert.Equal(t, created.CreatedAt.Unix(), notes[0].CreatedAt.Unix())
	assert.True(t, notes[0].UpdatedAt.After(notes[0].CreatedAt))
}

func TestLocalSaveNoteUnknownIDInserts(t *testing.T) {
	l := newTestLocal(t)
	ctx := context.Background()

	got := l.SaveNote(ctx, models.Note{ID: 12345, Title: "Orphan", Content: "..."})
	require.NotNil(t, got)
	// Unknown ids fall through to insert with a fresh id.
	assert.NotEqual(t, int64(12345), got.ID)
	assert.Len(t, l.GetNotes(ctx), 1)
}

func TestLocalSavedLocations(t *testing.T) {
	l := newTestLocal(t)
	ctx := context.Background()

	assert.Empty(t, l.GetSavedLocations(ctx))

	loc := l.AddSavedLocation(ctx, models.SavedLocation{Name: "Kielder", Lat: 55.2, Lng: -2.6, Zoom: 9.5})
	require.NotNil(t, loc)
	assert.NotZero(t, loc.ID)

	locs := l.GetSavedLocations(ctx)
	require.Len(t, locs, 1)
	assert.Equal(t, "Kielder", locs[0].Name)
	assert.Equal(t, 9.5, locs[0].Zoom)
}

func TestLocalSnapshotRoundTrip(t *testing.T) {
	l := newTestLocal(t)
	ctx := context.Background()

	assert.Nil(t, l.GetSnapshot(ctx))

	snap := models.Snapshot{
		Progress:     models.DefaultProgress("2024-01-10"),
		ActiveLayers: []string{"base", "peatland"},
	}
	l.SaveSnapshot(ctx, snap)

	got := l.GetSnapshot(ctx)
	require.NotNil(t, got)
	assert.Equal(t, snap.ActiveLayers, got.ActiveLayers)
	assert.Equal(t, "2024-01-10", got.Progress.LastStudyDate)
}
