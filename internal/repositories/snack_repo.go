package repositories

import "dailydiet/internal/models"

// SnackRepository defines the interface for snack data access.
//
// Every method is scoped to an owning user: rows belonging to other users
// are invisible, so a cross-user read yields (nil, nil) and a cross-user
// update or delete matches zero rows.
type SnackRepository interface {
	GetAllByUser(userID uint) ([]models.Snack, error)
	GetByID(id, userID uint) (*models.Snack, error)
	Create(snack *models.Snack) error
	Update(snack *models.Snack) (bool, error)
	Delete(id, userID uint) (bool, error)
	Summary(userID uint) (*models.Summary, error)
}
