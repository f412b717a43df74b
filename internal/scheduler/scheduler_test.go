package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vlasenka/pausebot/internal/models"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	users []models.User
	err   error
}

func (f *fakeUserRepo) ListReminderRecipients(_ context.Context) ([]models.User, error) {
	return f.users, f.err
}

type fakeContent struct{}

func (fakeContent) RandomReminder(_ context.Context) string {
	return "Пора сделать паузу."
}

type fakeNotifier struct {
	sent    []int64
	failFor map[int64]bool
}

func (f *fakeNotifier) Send(_ context.Context, chatID int64, _ string, _ json.RawMessage) error {
	if f.failFor[chatID] {
		return errors.New("chat blocked")
	}
	f.sent = append(f.sent, chatID)
	return nil
}

func TestScheduler_Tick(t *testing.T) {
	// Monday 07:00 UTC, inside the morning window
	now := time.Date(2026, time.August, 31, 7, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		users    []models.User
		listErr  error
		failFor  map[int64]bool
		wantSent []int64
	}{
		{
			name: "sends_to_eligible_users_only",
			users: []models.User{
				{ChatID: 1, ReminderFrequency: models.FrequencyDaily, ReminderTime: models.ReminderMorning},
				{ChatID: 2, ReminderFrequency: models.FrequencyDaily, ReminderTime: models.ReminderEvening},
				{ChatID: 3, ReminderFrequency: models.FrequencyWeekly, ReminderTime: models.ReminderMorning},
			},
			wantSent: []int64{1, 3},
		},
		{
			name: "failed_send_does_not_abort_batch",
			users: []models.User{
				{ChatID: 1, ReminderFrequency: models.FrequencyDaily, ReminderTime: models.ReminderMorning},
				{ChatID: 2, ReminderFrequency: models.FrequencyDaily, ReminderTime: models.ReminderMorning},
				{ChatID: 3, ReminderFrequency: models.FrequencyDaily, ReminderTime: models.ReminderMorning},
			},
			failFor:  map[int64]bool{2: true},
			wantSent: []int64{1, 3},
		},
		{
			name:     "repository_error_sends_nothing",
			listErr:  errors.New("connection refused"),
			wantSent: nil,
		},
		{
			name:     "no_recipients",
			users:    []models.User{},
			wantSent: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nt := &fakeNotifier{failFor: tt.failFor}
			s := New(&fakeUserRepo{users: tt.users, err: tt.listErr}, fakeContent{}, nt, zap.NewNop())

			s.Tick(context.Background(), now)

			assert.Equal(t, tt.wantSent, nt.sent)
		})
	}
}

func TestNextHour(t *testing.T) {
	now := time.Date(2026, time.August, 31, 7, 13, 42, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.August, 31, 8, 0, 0, 0, time.UTC), nextHour(now))

	exact := time.Date(2026, time.August, 31, 7, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.August, 31, 8, 0, 0, 0, time.UTC), nextHour(exact))
}

// re-arming after a pass that ran into the hour still lands on :00, so a
// slow pass cannot shift every following pass off the boundary
func TestNextHour_RealignsAfterSlowPass(t *testing.T) {
	afterSlowPass := time.Date(2026, time.August, 31, 8, 7, 30, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.August, 31, 9, 0, 0, 0, time.UTC), nextHour(afterSlowPass))
}
