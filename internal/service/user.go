package service

import (
	"context"

	"github.com/vlasenka/pausebot/internal/models"
)

// UserRepository is interface for interacting with user-related data
type UserRepository interface {
	// UpsertUser creates the user row or replaces its profile and settings
	UpsertUser(ctx context.Context, user *models.User) (*models.User, error)
	// GetUserByChatID returns user by telegram chat id
	GetUserByChatID(ctx context.Context, chatID int64) (*models.User, error)
}

// UserService owns user profiles and reminder settings. Settings are
// written here by the onboarding flow and only read by the scheduler.
type UserService struct {
	repo UserRepository
}

// NewUserService creates new UserService instance
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Upsert stores the user profile and reminder settings
func (us *UserService) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	return us.repo.UpsertUser(ctx, user)
}

// Get returns the user by telegram chat id
func (us *UserService) Get(ctx context.Context, chatID int64) (*models.User, error) {
	return us.repo.GetUserByChatID(ctx, chatID)
}
