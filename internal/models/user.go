package models

// User represents a registered diet-tracking user.
//
// SessionID is the opaque bearer token issued at registration and stored
// in the session cookie. It is minted once per user and never rotated.
type User struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Username  string  `json:"username" gorm:"index;type:varchar(100);not null" validate:"required,min=1,max=100"`
	SessionID *string `json:"session_id" gorm:"uniqueIndex;type:varchar(36)"`
}
