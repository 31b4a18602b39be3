package store

import (
	"time"

	"github.com/example/nchub/pkg/models"
)

// advanceStreak applies the study-streak rule against the date stored before
// the mutation: a gap of exactly one calendar day extends the streak, more
// than one resets it to 1, same day leaves it untouched. The study date is
// stamped with today regardless of branch.
func (s *Store) advanceStreak(rec *models.ProgressRecord, prevDate string) {
	today := s.today()
	switch diff := calendarDays(prevDate, today); {
	case diff == 1:
		rec.StudyStreak++
	case diff > 1:
		rec.StudyStreak = 1
	}
	rec.LastStudyDate = today
}

// calendarDays returns whole days from one ISO date to another. An
// unparseable stored date counts as zero days, which leaves the streak alone
// and lets the stamp repair the field.
func calendarDays(from, to string) int {
	f, err := time.Parse(models.DateLayout, from)
	if err != nil {
		return 0
	}
	t, err := time.Parse(models.DateLayout, to)
	if err != nil {
		return 0
	}
	return int(t.Sub(f).Hours() / 24)
}
