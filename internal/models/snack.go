package models

import "time"

// Snack represents a single meal record owned by a user.
type Snack struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null" validate:"required"`
	Description string    `json:"description" gorm:"type:varchar(500);not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	OnDiet      bool      `json:"on_diet" gorm:"not null;default:false"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
}

// Summary holds the dietary figures for one user, computed from a single
// consistent snapshot of their snacks.
type Summary struct {
	Total        int64 `json:"total"`
	OnDiet       int64 `json:"on_diet"`
	NotOnDiet    int64 `json:"not_on_diet"`
	BestSequence int64 `json:"best_sequence"`
}
