package services

import (
	"fmt"

	"dailydiet/internal/models"
	"dailydiet/internal/repositories"

	"github.com/google/uuid"
)

// UserService handles business logic for registration and session lookup.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// Register looks up the user by username and creates one if absent,
// minting a fresh random session identifier for new users. Registering the
// same username again returns the existing row unchanged, so the session
// identifier is never rotated.
func (s *UserService) Register(username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %s: %w", username, err)
	}
	if user != nil {
		return user, nil
	}

	sessionID := uuid.New().String()
	user = &models.User{
		Username:  username,
		SessionID: &sessionID,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user %s: %w", username, err)
	}
	return user, nil
}

// ResolveSession maps a session identifier to its user. Returns (nil, nil)
// when no user holds the session.
func (s *UserService) ResolveSession(sessionID string) (*models.User, error) {
	user, err := s.userRepo.GetBySessionID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	return user, nil
}
