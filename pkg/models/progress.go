package models

// DateLayout is the calendar-date format used for study dates. Progress dates
// never carry a time component.
const DateLayout = "2006-01-02"

// ProgressRecord tracks cumulative learning activity for the installation.
// The slice fields behave as sets: insertion order, no duplicates.
type ProgressRecord struct {
	ConceptsLearned    int       `json:"conceptsLearned"`
	FrameworksExplored []string  `json:"frameworksExplored"`
	StudyStreak        int       `json:"studyStreak"`
	LastStudyDate      string    `json:"lastStudyDate"`
	TotalTimeMinutes   int       `json:"totalTimeMinutes"`
	KnownTerms         []string  `json:"knownTerms"`
	ReviewTerms        []string  `json:"reviewTerms"`
	QuizScores         []float64 `json:"quizScores"`
}

// DefaultProgress returns the record created on first run.
func DefaultProgress(today string) ProgressRecord {
	return ProgressRecord{
		ConceptsLearned:    0,
		FrameworksExplored: []string{},
		StudyStreak:        1,
		LastStudyDate:      today,
		TotalTimeMinutes:   0,
		KnownTerms:         []string{},
		ReviewTerms:        []string{},
		QuizScores:         []float64{},
	}
}

// Clone returns a deep copy so callers can hand out records without sharing
// the backing slices.
func (p ProgressRecord) Clone() ProgressRecord {
	out := p
	out.FrameworksExplored = append([]string{}, p.FrameworksExplored...)
	out.KnownTerms = append([]string{}, p.KnownTerms...)
	out.ReviewTerms = append([]string{}, p.ReviewTerms...)
	out.QuizScores = append([]float64{}, p.QuizScores...)
	return out
}

// Snapshot is the reduced persisted view of the store: progress plus the
// active map layers. It is written on every state change, independent of the
// per-collection documents.
type Snapshot struct {
	Progress     ProgressRecord `json:"progress"`
	ActiveLayers []string       `json:"activeLayers"`
}
