package models

import "time"

// reminder frequency
const (
	FrequencyDaily        = "daily"
	FrequencyThreePerWeek = "three_per_week"
	FrequencyWeekly       = "weekly"
)

// reminder time slot
const (
	ReminderMorning   = "morning"
	ReminderAfternoon = "afternoon"
	ReminderEvening   = "evening"
	ReminderRandom    = "random"
)

// User is bot user entity. Reminder settings are written by the onboarding
// flow and only read by the scheduler.
type User struct {
	ChatID              int64
	Username            string
	FirstName           string
	ReminderEnabled     bool
	ReminderFrequency   string
	ReminderTime        string
	OnboardingCompleted bool
	CreatedAt           time.Time
}
