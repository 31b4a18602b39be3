// Package store is the single in-process source of truth for mutable
// application state: learning progress, custom content, notes, saved map
// locations, and UI selections. Mutations are synchronous and immediately
// visible to observers; durable writes are fire-and-forget mirrors that never
// block a mutation. Each persisting mutation returns a completion channel so
// tests can wait for the write; production call sites discard it.
package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/example/nchub/internal/database"
	"github.com/example/nchub/pkg/models"
)

// CounterField names a numeric progress field for IncrementCounter.
type CounterField string

const (
	FieldConceptsLearned  CounterField = "conceptsLearned"
	FieldTotalTimeMinutes CounterField = "totalTimeMinutes"
)

// SetField names a set-valued progress field for AddToSet.
type SetField string

const (
	FieldFrameworksExplored SetField = "frameworksExplored"
	FieldKnownTerms         SetField = "knownTerms"
	FieldReviewTerms        SetField = "reviewTerms"
)

// ScalarField names a scalar progress field for ReplaceScalar.
type ScalarField string

const FieldLastStudyDate ScalarField = "lastStudyDate"

// Store owns the application state. It is created by the composition root and
// passed by reference; there is no package-level instance.
type Store struct {
	mu      sync.Mutex
	backend database.Backend
	log     *zap.Logger
	now     func() time.Time

	progress     models.ProgressRecord
	customTerms  []models.CustomTerm
	notes        []models.Note
	locations    []models.SavedLocation
	activeLayers []string
	activeTab    string
	messages     []models.Message

	observers []func()
}

// New builds an empty store over the given backend. Call Hydrate before
// serving traffic.
func New(backend database.Backend, log *zap.Logger) *Store {
	s := &Store{
		backend:      backend,
		log:          log,
		now:          time.Now,
		activeLayers: []string{"base"},
		activeTab:    "dashboard",
	}
	s.progress = models.DefaultProgress(s.today())
	return s
}

// Subscribe registers an observer invoked after every mutation.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.Lock()
	obs := append([]func(){}, s.observers...)
	s.mu.Unlock()
	for _, fn := range obs {
		fn()
	}
}

func (s *Store) today() string {
	return s.now().Format(models.DateLayout)
}

// Hydrate loads persisted state: the reduced snapshot (progress + active
// layers), the full progress document when present, and the three content
// collections. Absence of any of them means "not yet initialized" and leaves
// defaults in place.
func (s *Store) Hydrate(ctx context.Context) {
	snap := s.backend.GetSnapshot(ctx)
	progress := s.backend.GetProgress(ctx)
	terms := s.backend.GetCustomTerms(ctx)
	notes := s.backend.GetNotes(ctx)
	locations := s.backend.GetSavedLocations(ctx)

	s.mu.Lock()
	if snap != nil {
		s.progress = snap.Progress.Clone()
		if len(snap.ActiveLayers) > 0 {
			s.activeLayers = append([]string{}, snap.ActiveLayers...)
		}
	}
	if progress != nil {
		s.progress = progress.Clone()
	}
	s.customTerms = terms
	s.notes = notes
	s.locations = locations
	s.mu.Unlock()
	s.notify()
}

// snapshotLocked builds the reduced persisted view. Caller holds mu.
func (s *Store) snapshotLocked() models.Snapshot {
	return models.Snapshot{
		Progress:     s.progress.Clone(),
		ActiveLayers: append([]string{}, s.activeLayers...),
	}
}

// persist mirrors the given state to the backend without blocking the caller.
// A nil rec skips the progress document and writes only the snapshot.
func (s *Store) persist(rec *models.ProgressRecord, snap models.Snapshot) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		ctx := context.Background()
		if rec != nil {
			s.backend.SaveProgress(ctx, *rec)
		}
		s.backend.SaveSnapshot(ctx, snap)
	}()
	return done
}

// mutateProgress applies one reducer to a copy of the record, runs the streak
// side effect against the pre-mutation study date, commits, notifies, and
// mirrors the full record to the backend.
func (s *Store) mutateProgress(apply func(*models.ProgressRecord)) <-chan struct{} {
	s.mu.Lock()
	prevDate := s.progress.LastStudyDate
	rec := s.progress.Clone()
	apply(&rec)
	s.advanceStreak(&rec, prevDate)
	s.progress = rec
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify()
	return s.persist(&rec, snap)
}

// IncrementCounter adds delta to a numeric progress field. A zero delta
// counts as 1.
func (s *Store) IncrementCounter(field CounterField, delta int) <-chan struct{} {
	if delta == 0 {
		delta = 1
	}
	return s.mutateProgress(func(rec *models.ProgressRecord) {
		switch field {
		case FieldConceptsLearned:
			rec.ConceptsLearned += delta
		case FieldTotalTimeMinutes:
			rec.TotalTimeMinutes += delta
		default:
			s.log.Warn("unknown counter field", zap.String("field", string(field)))
		}
	})
}

// AddToSet adds value to a set-valued progress field if absent; a present
// value is a no-op. It never removes.
func (s *Store) AddToSet(field SetField, value string) <-chan struct{} {
	return s.mutateProgress(func(rec *models.ProgressRecord) {
		switch field {
		case FieldFrameworksExplored:
			rec.FrameworksExplored = addToSet(rec.FrameworksExplored, value)
		case FieldKnownTerms:
			rec.KnownTerms = addToSet(rec.KnownTerms, value)
		case FieldReviewTerms:
			rec.ReviewTerms = addToSet(rec.ReviewTerms, value)
		default:
			s.log.Warn("unknown set field", zap.String("field", string(field)))
		}
	})
}

// ReplaceScalar replaces a scalar progress field outright. The streak side
// effect still runs against the date that was stored before the call and then
// stamps today, like every other progress mutation.
func (s *Store) ReplaceScalar(field ScalarField, value string) <-chan struct{} {
	return s.mutateProgress(func(rec *models.ProgressRecord) {
		switch field {
		case FieldLastStudyDate:
			rec.LastStudyDate = value
		default:
			s.log.Warn("unknown scalar field", zap.String("field", string(field)))
		}
	})
}

// Apply runs an arbitrary reducer over the progress record.
func (s *Store) Apply(fn func(*models.ProgressRecord)) <-chan struct{} {
	return s.mutateProgress(fn)
}

// ApplyQuizScore appends one score to the ordered quiz history.
func (s *Store) ApplyQuizScore(score float64) <-chan struct{} {
	return s.Apply(func(rec *models.ProgressRecord) {
		rec.QuizScores = append(rec.QuizScores, score)
	})
}

// MarkTermKnown records the term as known and clears it from the review set.
// No streak side effect; only the reduced snapshot is mirrored.
func (s *Store) MarkTermKnown(term string) <-chan struct{} {
	s.mu.Lock()
	rec := s.progress.Clone()
	rec.KnownTerms = addToSet(rec.KnownTerms, term)
	rec.ReviewTerms = removeFromSet(rec.ReviewTerms, term)
	s.progress = rec
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify()
	return s.persist(nil, snap)
}

// MarkTermForReview records the term for review. It does not remove the term
// from the known set, unlike MarkTermKnown's clearing of the review set; the
// asymmetry is long-standing observed behavior and is pinned by tests.
func (s *Store) MarkTermForReview(term string) <-chan struct{} {
	s.mu.Lock()
	rec := s.progress.Clone()
	rec.ReviewTerms = addToSet(rec.ReviewTerms, term)
	s.progress = rec
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify()
	return s.persist(nil, snap)
}

// ToggleLayer flips membership of the layer in the active set.
func (s *Store) ToggleLayer(layerID string) <-chan struct{} {
	s.mu.Lock()
	if containsString(s.activeLayers, layerID) {
		s.activeLayers = removeFromSet(s.activeLayers, layerID)
	} else {
		s.activeLayers = append(s.activeLayers, layerID)
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify()
	return s.persist(nil, snap)
}

// AddCustomTerm inserts through the backend and prepends the stored entity
// (with its assigned id) to the in-memory list. Returns nil when the insert
// was lost to a persistence failure.
func (s *Store) AddCustomTerm(ctx context.Context, term models.CustomTerm) *models.CustomTerm {
	saved := s.backend.AddCustomTerm(ctx, term)
	if saved == nil {
		return nil
	}
	s.mu.Lock()
	s.customTerms = append([]models.CustomTerm{*saved}, s.customTerms...)
	s.mu.Unlock()
	s.notify()
	return saved
}

// DeleteCustomTerm removes the term by id, both durably and in memory.
func (s *Store) DeleteCustomTerm(ctx context.Context, id int64) {
	s.backend.DeleteCustomTerm(ctx, id)
	s.mu.Lock()
	kept := s.customTerms[:0]
	for _, t := range s.customTerms {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.customTerms = kept
	s.mu.Unlock()
	s.notify()
}

// LoadCustomTerms replaces the in-memory list wholesale from the backend.
func (s *Store) LoadCustomTerms(ctx context.Context) {
	terms := s.backend.GetCustomTerms(ctx)
	s.mu.Lock()
	s.customTerms = terms
	s.mu.Unlock()
	s.notify()
}

// AddNote upserts through the backend. A note sharing an existing id is
// replaced in place; a new note is prepended.
func (s *Store) AddNote(ctx context.Context, note models.Note) *models.Note {
	saved := s.backend.SaveNote(ctx, note)
	if saved == nil {
		return nil
	}
	s.mu.Lock()
	replaced := false
	for i := range s.notes {
		if s.notes[i].ID == saved.ID {
			s.notes[i] = *saved
			replaced = true
			break
		}
	}
	if !replaced {
		s.notes = append([]models.Note{*saved}, s.notes...)
	}
	s.mu.Unlock()
	s.notify()
	return saved
}

// LoadNotes replaces the in-memory list wholesale from the backend.
func (s *Store) LoadNotes(ctx context.Context) {
	notes := s.backend.GetNotes(ctx)
	s.mu.Lock()
	s.notes = notes
	s.mu.Unlock()
	s.notify()
}

// SaveLocation inserts a saved map location and prepends the stored entity.
func (s *Store) SaveLocation(ctx context.Context, loc models.SavedLocation) *models.SavedLocation {
	saved := s.backend.AddSavedLocation(ctx, loc)
	if saved == nil {
		return nil
	}
	s.mu.Lock()
	s.locations = append([]models.SavedLocation{*saved}, s.locations...)
	s.mu.Unlock()
	s.notify()
	return saved
}

// LoadSavedLocations replaces the in-memory list wholesale from the backend.
func (s *Store) LoadSavedLocations(ctx context.Context) {
	locs := s.backend.GetSavedLocations(ctx)
	s.mu.Lock()
	s.locations = locs
	s.mu.Unlock()
	s.notify()
}

// SetActiveTab records the selected UI tab.
func (s *Store) SetActiveTab(tab string) {
	s.mu.Lock()
	s.activeTab = tab
	s.mu.Unlock()
	s.notify()
}

// AddMessage appends one turn to the assistant conversation history.
func (s *Store) AddMessage(msg models.Message) {
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
	s.notify()
}

// ClearMessages drops the assistant conversation history.
func (s *Store) ClearMessages() {
	s.mu.Lock()
	s.messages = nil
	s.mu.Unlock()
	s.notify()
}

// Progress returns a copy of the current record.
func (s *Store) Progress() models.ProgressRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress.Clone()
}

// CustomTerms returns a copy of the in-memory term list.
func (s *Store) CustomTerms() []models.CustomTerm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CustomTerm{}, s.customTerms...)
}

// Notes returns a copy of the in-memory note list.
func (s *Store) Notes() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Note{}, s.notes...)
}

// SavedLocations returns a copy of the in-memory location list.
func (s *Store) SavedLocations() []models.SavedLocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.SavedLocation{}, s.locations...)
}

// ActiveLayers returns a copy of the active layer set.
func (s *Store) ActiveLayers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.activeLayers...)
}

// LayerActive reports whether the layer is in the active set.
func (s *Store) LayerActive(layerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return containsString(s.activeLayers, layerID)
}

// ActiveTab returns the selected UI tab.
func (s *Store) ActiveTab() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeTab
}

// Messages returns a copy of the conversation history.
func (s *Store) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message{}, s.messages...)
}

func addToSet(set []string, value string) []string {
	if containsString(set, value) {
		return set
	}
	return append(set, value)
}

func removeFromSet(set []string, value string) []string {
	out := set[:0]
	for _, v := range set {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

func containsString(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
