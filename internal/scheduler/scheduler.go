package scheduler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/vlasenka/pausebot/internal/models"
	"github.com/vlasenka/pausebot/internal/notifier"
	"go.uber.org/zap"
)

// UserRepository is interface for fetching reminder recipients
type UserRepository interface {
	// ListReminderRecipients returns users with reminders enabled and
	// onboarding completed
	ListReminderRecipients(ctx context.Context) ([]models.User, error)
}

// ContentSource provides short reminder phrases
type ContentSource interface {
	RandomReminder(ctx context.Context) string
}

// Notifier delivers a message to a recipient
type Notifier interface {
	Send(ctx context.Context, chatID int64, text string, markup json.RawMessage) error
}

// Scheduler sends pause reminders to opted-in users once per hour.
// No "sent today" marker is kept: a tick re-run inside the matching hour
// sends again.
type Scheduler struct {
	users    UserRepository
	cache    ContentSource
	notifier Notifier
	logger   *zap.Logger
}

// New creates new Scheduler instance
func New(users UserRepository, cache ContentSource, nt Notifier, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		users:    users,
		cache:    cache,
		notifier: nt,
		logger:   logger,
	}
}

// Run fires a pass at the top of every hour until ctx is cancelled.
// The timer is re-armed to the next hour boundary after every pass, so a
// slow pass never shifts the cadence off :00.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		timer := time.NewTimer(time.Until(nextHour(time.Now())))

		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Debug("reminder scheduler is done")
			return
		case now := <-timer.C:
			s.Tick(ctx, now)
		}
	}
}

func nextHour(now time.Time) time.Time {
	return now.Truncate(time.Hour).Add(time.Hour)
}

// Tick evaluates every opted-in user once and delivers where both gates
// pass. A failed send is logged and skipped, the rest of the batch goes on.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) {
	users, err := s.users.ListReminderRecipients(ctx)
	if err != nil {
		s.logger.Error("list reminder recipients", zap.Error(err))
		return
	}

	s.logger.Debug("checking pauses",
		zap.Int("users", len(users)),
		zap.Int("hour", now.UTC().Hour()),
		zap.String("weekday", now.UTC().Weekday().String()))

	sent := 0
	for _, user := range users {
		if !ShouldSend(user, now) {
			continue
		}

		text := s.cache.RandomReminder(ctx)
		if err := s.notifier.Send(ctx, user.ChatID, text, notifier.PauseMenu()); err != nil {
			s.logger.Warn("send pause reminder",
				zap.Int64("chat_id", user.ChatID), zap.Error(err))
			continue
		}
		sent++
	}

	if sent > 0 {
		s.logger.Info("pause reminders sent",
			zap.Int("count", sent), zap.Int("hour", now.UTC().Hour()))
	}
}
