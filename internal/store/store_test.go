package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/nchub/pkg/models"
)

// fakeBackend records writes in memory and never fails, matching the
// degraded-error contract of the real backends.
type fakeBackend struct {
	mu        sync.Mutex
	progress  *models.ProgressRecord
	snapshot  *models.Snapshot
	terms     []models.CustomTerm
	notes     []models.Note
	locations []models.SavedLocation
	nextID    int64

	progressWrites int
	snapshotWrites int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{nextID: 1}
}

func (f *fakeBackend) GetProgress(ctx context.Context) *models.ProgressRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.progress == nil {
		return nil
	}
	rec := f.progress.Clone()
	return &rec
}

func (f *fakeBackend) SaveProgress(ctx context.Context, rec models.ProgressRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := rec.Clone()
	f.progress = &clone
	f.progressWrites++
}

func (f *fakeBackend) GetCustomTerms(ctx context.Context) []models.CustomTerm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.CustomTerm{}, f.terms...)
}

func (f *fakeBackend) AddCustomTerm(ctx context.Context, term models.CustomTerm) *models.CustomTerm {
	f.mu.Lock()
	defer f.mu.Unlock()
	term.ID = f.nextID
	f.nextID++
	f.terms = append([]models.CustomTerm{term}, f.terms...)
	return &term
}

func (f *fakeBackend) DeleteCustomTerm(ctx context.Context, id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.terms[:0]
	for _, t := range f.terms {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	f.terms = kept
}

func (f *fakeBackend) GetNotes(ctx context.Context) []models.Note {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Note{}, f.notes...)
}

func (f *fakeBackend) SaveNote(ctx context.Context, note models.Note) *models.Note {
	f.mu.Lock()
	defer f.mu.Unlock()
	if note.ID == 0 {
		note.ID = f.nextID
		f.nextID++
		f.notes = append([]models.Note{note}, f.notes...)
		return &note
	}
	for i := range f.notes {
		if f.notes[i].ID == note.ID {
			f.notes[i] = note
			return &note
		}
	}
	f.notes = append([]models.Note{note}, f.notes...)
	return &note
}

func (f *fakeBackend) GetSavedLocations(ctx context.Context) []models.SavedLocation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.SavedLocation{}, f.locations...)
}

func (f *fakeBackend) AddSavedLocation(ctx context.Context, loc models.SavedLocation) *models.SavedLocation {
	f.mu.Lock()
	defer f.mu.Unlock()
	loc.ID = f.nextID
	f.nextID++
	f.locations = append([]models.SavedLocation{loc}, f.locations...)
	return &loc
}

func (f *fakeBackend) GetSnapshot(ctx context.Context) *models.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot
}

func (f *fakeBackend) SaveSnapshot(ctx context.Context, snap models.Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snapshot = &snap
	f.snapshotWrites++
}

func (f *fakeBackend) Close() error { return nil }

func fixedClock(date string) func() time.Time {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func newTestStore(backend *fakeBackend, today string) *Store {
	s := New(backend, zap.NewNop())
	s.now = fixedClock(today)
	s.progress = models.DefaultProgress(today)
	return s
}

func TestIncrementCounterDefaultsToOne(t *testing.T) {
	backend := newFakeBackend()
	s := newTestStore(backend, "2024-01-10")

	<-s.IncrementCounter(FieldConceptsLearned, 0)
	<-s.IncrementCounter(FieldConceptsLearned, 3)

	assert.Equal(t, 4, s.Progress().ConceptsLearned)
}

func TestAddToSetIsIdempotent(t *testing.T) {
	backend := newFakeBackend()
	s := newTestStore(backend, "2024-01-10")

	<-s.AddToSet(FieldFrameworksExplored, "TNFD")
	<-s.AddToSet(FieldFrameworksExplored, "TNFD")
	<-s.AddToSet(FieldFrameworksExplored, "SBTN")

	assert.Equal(t, []string{"TNFD", "SBTN"}, s.Progress().FrameworksExplored)
}

func TestStreakExtendsAfterOneDay(t *testing.T) {
	backend := newFakeBackend()
	s := newTestStore(backend, "2024-01-11")
	s.progress.LastStudyDate = "2024-01-10"
	s.progress.StudyStreak = 5

	<-s.IncrementCounter(FieldConceptsLearned, 1)

	got := s.Progress()
	assert.Equal(t, 6, got.StudyStreak)
	assert.Equal(t, "2024-01-11", got.LastStudyDate)
}

func TestStreakResetsAfterGap(t *testing.T) {
	backend := newFakeBackend()
	s := newTestStore(backend, "2024-01-15")
	s.progress.LastStudyDate = "2024-01-10"
	s.progress.StudyStreak = 5

	<-s.IncrementCounter(FieldConceptsLearned, 1)

	got := s.Progress()
	assert.Equal(t, 1, got.StudyStreak)
	assert.Equal(t, "2024-01-15", got.LastStudyDate)
}

func TestStreakUnchangedSameDay(t *testing.T) {
	backend := newFakeBackend()
	s := newTestStore(backend, "2024-01-10")
	s.progress.StudyStreak = 5

	<-s.IncrementCounter(FieldConceptsLearned, 1)
	<-s.IncrementCounter(FieldConceptsLearned, 1)

	assert.Equal(t, 5, s.Progress().StudyStreak)
}

func TestReplaceScalarRunsStreakAgainstStoredDate(t *testing.T) {
	backend := newFakeBackend()
	s := newTestStore(backend, "2024-01-11")
	s.progress.LastStudyDate = "2024-01-10"
	s.progress.StudyStreak = 5

	// The reducer writes an arbitrary date, but the streak rule compares
	// today against the date stored before the call and then stamps today.
	<-s.ReplaceScalar(FieldLastStudyDate, "1999-01-01")

	got := s.Progress()
	assert.Equal(t, 6, got.StudyStreak)
	assert.Equal(t, "2024-01-11", got.LastStudyDate)
}

func TestMarkTermKnownClearsReview(t *testing.T) {
	backend := newFakeBackend()
	s := newTestStore(backend, "2024-01-10")

	<-s.MarkTermForReview("biodiversity net gain")
	<-s.MarkTermKnown("biodiversity net gain")

	got := s.Progress()
	assert.Equal(t, []string{"biodiversity net gain"}, got.KnownTerms)
	assert.Empty(t, got.ReviewTerms)
}

func TestMarkTermForReviewKeepsKnown(t *testing.T) {
	backend := newFakeBackend()
	s := newTestStore(backend, "2024-01-10")

	<-s.MarkTermKnown("peatland")
	<-s.MarkTermForReview("peatland")

	// Review does not clear known; a term can sit in both sets at once.
	got := s.Progress()
	assert.Equal(t, []string{"peatland"}, got.KnownTerms)
	assert.Equal(t, []string{"peatland"}, got.ReviewTerms)
}

func TestMarkTermDoesNotAdvanceStreak(t *testing.T) {
	backend := newFakeBackend()
	s := newTestStore(backend, "2024-01-11")
	s.progress.LastStudyDate = "2024-01-10"
	s.progress.StudyStreak = 5

	<-s.MarkTermKnown("peatland")

	got := s.Progress()
	assert.Equal(t, 5, got.StudyStreak)
	assert.Equal(t, "2024-01-10", got.LastStudyDate)
	assert.Equal(t, 0, backend.progressWrites)
	assert.Equal(t, 1, backend.snapshotWrites)
}

func TestMutationMirrorsProgressAndSnapshot(t *testing.T) {
	backend := newFakeBackend()
	s := newTestStore(backend, "2024-01-10")

	<-s.IncrementCounter(FieldTotalTimeMinutes, 30)

	require.NotNil(t, backend.progress)
	assert.Equal(t, 30, backend.progress.TotalTimeMinutes)
	require.NotNil(t, backend.snapshot)
	assert.Equal(t, 30, backend.snapshot.Progress.TotalTimeMinutes)
	assert.Equal(t, []string{"base"}, backend.snapshot.ActiveLayers)
}

func TestToggleLayer(t *testing.T) {
	backend := newFakeBackend()
	s := newTestStore(backend, "2024-01-10")

	<-s.ToggleLayer("peatland")
	assert.True(t, s.LayerActive("peatland"))
	assert.Equal(t, []string{"base", "peatland"}, s.ActiveLayers())

	<-s.ToggleLayer("peatland")
	assert.False(t, s.LayerActive("peatland"))
	assert.Equal(t, []string{"base"}, s.ActiveLayers())
	assert.Equal(t, 0, backend.progressWrites)
}

func TestHydratePrefersFullProgressOverSnapshot(t *testing.T) {
	backend := newFakeBackend()
	snapRec := models.DefaultProgress("2024-01-05")
	snapRec.ConceptsLearned = 2
	backend.snapshot = &models.Snapshot{
		Progress:     snapRec,
		ActiveLayers: []string{"base", "woodland"},
	}
	fullRec := models.DefaultProgress("2024-01-08")
	fullRec.ConceptsLearned = 7
	backend.progress = &fullRec

	s := newTestStore(backend, "2024-01-10")
	s.Hydrate(context.Background())

	assert.Equal(t, 7, s.Progress().ConceptsLearned)
	assert.Equal(t, []string{"base", "woodland"}, s.ActiveLayers())
}

func TestHydrateKeepsDefaultsWhenEmpty(t *testing.T) {
	backend := newFakeBackend()
	s := newTestStore(backend, "2024-01-10")
	s.Hydrate(context.Background())

	got := s.Progress()
	assert.Equal(t, 1, got.StudyStreak)
	assert.Equal(t, "2024-01-10", got.LastStudyDate)
	assert.Equal(t, []string{"base"}, s.ActiveLayers())
}

func TestAddNoteReplacesInPlace(t *testing.T) {
	backend := newFakeBackend()
	s := newTestStore(backend, "2024-01-10")

	first := s.AddNote(context.Background(), models.Note{Title: "Site visit", Content: "draft"})
	require.NotNil(t, first)
	second := s.AddNote(context.Background(), models.Note{Title: "Survey", Content: "draft"})
	require.NotNil(t, second)

	updated := *first
	updated.Content = "final"
	got := s.AddNote(context.Background(), updated)
	require.NotNil(t, got)

	notes := s.Notes()
	require.Len(t, notes, 2)
	assert.Equal(t, "Survey", notes[0].Title)
	assert.Equal(t, "final", notes[1].Content)
}

func TestAddAndDeleteCustomTerm(t *testing.T) {
	backend := newFakeBackend()
	s := newTestStore(backend, "2024-01-10")

	saved := s.AddCustomTerm(context.Background(), models.CustomTerm{Term: "rewilding", Definition: "..."})
	require.NotNil(t, saved)
	assert.NotZero(t, saved.ID)
	require.Len(t, s.CustomTerms(), 1)

	s.DeleteCustomTerm(context.Background(), saved.ID)
	assert.Empty(t, s.CustomTerms())
	assert.Empty(t, backend.GetCustomTerms(context.Background()))
}

func TestSaveLocationPrepends(t *testing.T) {
	backend := newFakeBackend()
	s := newTestStore(backend, "2024-01-10")

	first := s.SaveLocation(context.Background(), models.SavedLocation{Name: "Kielder", Lat: 55.2, Lng: -2.6, Zoom: 9})
	require.NotNil(t, first)
	second := s.SaveLocation(context.Background(), models.SavedLocation{Name: "Flow Country", Lat: 58.4, Lng: -3.9, Zoom: 8})
	require.NotNil(t, second)

	locs := s.SavedLocations()
	require.Len(t, locs, 2)
	assert.Equal(t, "Flow Country", locs[0].Name)
}

func TestSubscribeFiresOnMutation(t *testing.T) {
	backend := newFakeBackend()
	s := newTestStore(backend, "2024-01-10")

	var calls int
	s.Subscribe(func() { calls++ })

	<-s.IncrementCounter(FieldConceptsLearned, 1)
	s.SetActiveTab("map")

	assert.Equal(t, 2, calls)
}

func TestCalendarDaysUnparseableIsZero(t *testing.T) {
	assert.Equal(t, 0, calendarDays("not-a-date", "2024-01-10"))
	assert.Equal(t, 5, calendarDays("2024-01-10", "2024-01-15"))
	assert.Equal(t, -1, calendarDays("2024-01-11", "2024-01-10"))
}
