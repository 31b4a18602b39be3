// Package scheduler runs the hourly study reminder job.
package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/example/nchub/internal/store"
	"github.com/example/nchub/pkg/models"
)

// Notifier delivers a study reminder through some external channel.
type Notifier interface {
	SendStudyReminder(streakAtRisk bool, reviewCount int) error
}

// Scheduler manages scheduled tasks for the application.
type Scheduler struct {
	scheduler *gocron.Scheduler
	store     *store.Store
	notifier  Notifier
	log       *zap.Logger

	startHour int
	endHour   int

	now func() time.Time
}

// New creates a scheduler that reminds within [startHour, endHour].
func New(st *store.Store, notifier Notifier, log *zap.Logger, startHour, endHour int) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		store:     st,
		notifier:  notifier,
		log:       log,
		startHour: startHour,
		endHour:   endHour,
		now:       time.Now,
	}
}

// Start begins running all scheduled tasks in the background.
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminder)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) checkAndSendReminder() {
	now := s.now()
	hour := now.Hour()
	if hour < s.startHour || hour > s.endHour {
		s.log.Debug("outside reminder hours, skipping",
			zap.Int("hour", hour),
			zap.Int("start", s.startHour),
			zap.Int("end", s.endHour))
		return
	}

	progress := s.store.Progress()
	streakAtRisk := progress.LastStudyDate != now.Format(models.DateLayout)
	reviewCount := len(progress.ReviewTerms)

	if !streakAtRisk && reviewCount == 0 {
		return
	}

	if err := s.notifier.SendStudyReminder(streakAtRisk, reviewCount); err != nil {
		s.log.Warn("failed to send study reminder", zap.Error(err))
	}
}

// RunManualCheck forces a reminder check regardless of schedule, still
// honoring the hour window.
func (s *Scheduler) RunManualCheck() {
	s.checkAndSendReminder()
}
