package scheduler

import (
	"math/rand"
	"time"

	"github.com/vlasenka/pausebot/internal/models"
)

// reminder windows, UTC hours [start, end)
var timeRanges = map[string][2]int{
	models.ReminderMorning:   {7, 10},
	models.ReminderAfternoon: {12, 15},
	models.ReminderEvening:   {18, 21},
	models.ReminderRandom:    {9, 22},
}

// days for three_per_week: Monday, Wednesday, Friday
var threePerWeekDays = map[time.Weekday]bool{
	time.Monday:    true,
	time.Wednesday: true,
	time.Friday:    true,
}

// ShouldSend reports whether now is the user's reminder moment. It is a
// pure function of the user's settings and the UTC wall clock, so a tick
// re-evaluated after a restart reaches the same decision.
func ShouldSend(user models.User, now time.Time) bool {
	if user.ReminderFrequency == "" || user.ReminderTime == "" {
		return false
	}

	now = now.UTC()

	switch user.ReminderFrequency {
	case models.FrequencyWeekly:
		if now.Weekday() != time.Monday {
			return false
		}
	case models.FrequencyThreePerWeek:
		if !threePerWeekDays[now.Weekday()] {
			return false
		}
	case models.FrequencyDaily:
	default:
		return false
	}

	window, ok := timeRanges[user.ReminderTime]
	if !ok {
		return false
	}

	if user.ReminderTime == models.ReminderRandom {
		return now.Hour() == randomHour(user.ChatID, now, window[0], window[1])
	}

	// fixed slots fire at the start of their window
	return now.Hour() == window[0]
}

// randomHour draws the user's target hour for the day, uniform over
// [start, end). The source is seeded from stable identifiers only, so the
// hour stays the same for the whole day without persisting it.
func randomHour(chatID int64, now time.Time, start, end int) int {
	weekday := (int(now.Weekday()) + 6) % 7 // Monday = 0
	seed := chatID + int64(weekday)*100 + int64(now.Day())

	rnd := rand.New(rand.NewSource(seed))
	return start + rnd.Intn(end-start)
}
