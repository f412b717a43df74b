package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/vlasenka/pausebot/internal/models"
	"github.com/vlasenka/pausebot/internal/repository/postgres"
)

const (
	userColumns = `chat_id, username, first_name, reminder_enabled, reminder_frequency, reminder_time, onboarding_completed, created_at`

	upsertUserQuery = `
						INSERT INTO users (chat_id, username, first_name, reminder_enabled, reminder_frequency, reminder_time, onboarding_completed)
						VALUES ($1, $2, $3, $4, $5, $6, $7)
						ON CONFLICT (chat_id) DO UPDATE SET
							username = EXCLUDED.username,
							first_name = EXCLUDED.first_name,
							reminder_enabled = EXCLUDED.reminder_enabled,
							reminder_frequency = EXCLUDED.reminder_frequency,
							reminder_time = EXCLUDED.reminder_time,
							onboarding_completed = EXCLUDED.onboarding_completed
						RETURNING ` + userColumns

	selectUserByChatIDQuery = `
						SELECT ` + userColumns + ` FROM users
						WHERE chat_id = $1
`
	selectReminderRecipientsQuery = `
						SELECT ` + userColumns + ` FROM users
						WHERE reminder_enabled AND onboarding_completed
`
	countUsersQuery = `
						SELECT COUNT(*) FROM users
`
)

// UserRepository stores bot users
type UserRepository struct {
	db *postgres.DB
}

// NewUserRepository creates new UserRepository instance
func NewUserRepository(db *postgres.DB) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row, user *models.User) error {
	return row.Scan(&user.ChatID, &user.Username, &user.FirstName,
		&user.ReminderEnabled, &user.ReminderFrequency, &user.ReminderTime,
		&user.OnboardingCompleted, &user.CreatedAt)
}

// UpsertUser creates the user row or replaces its profile and reminder settings
func (ur *UserRepository) UpsertUser(ctx context.Context, user *models.User) (*models.User, error) {
	err := scanUser(ur.db.QueryRow(ctx, upsertUserQuery,
		user.ChatID, user.Username, user.FirstName, user.ReminderEnabled,
		user.ReminderFrequency, user.ReminderTime, user.OnboardingCompleted), user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByChatID returns user by telegram chat id
func (ur *UserRepository) GetUserByChatID(ctx context.Context, chatID int64) (*models.User, error) {
	user := models.User{}
	err := scanUser(ur.db.QueryRow(ctx, selectUserByChatIDQuery, chatID), &user)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &user, nil
}

// ListReminderRecipients returns users with reminders enabled and
// onboarding completed
func (ur *UserRepository) ListReminderRecipients(ctx context.Context) ([]models.User, error) {
	rows, err := ur.db.Query(ctx, selectReminderRecipientsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}

	for rows.Next() {
		user := models.User{}
		if err := scanUser(rows, &user); err != nil {
			continue
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// CountUsers returns total user count
func (ur *UserRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := ur.db.QueryRow(ctx, countUsersQuery).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
