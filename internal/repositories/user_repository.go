package repositories

import "dailydiet/internal/models"

// UserRepository defines the interface for user data access.
//
// Lookup methods return (nil, nil) when no row matches; a non-nil error
// always means the query itself failed.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetBySessionID(sessionID string) (*models.User, error)
}
