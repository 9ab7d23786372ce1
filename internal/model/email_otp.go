package model

import "time"

// EmailOTP stores the hashed one-time code issued for an email address.
// At most one active record exists per email; a new request replaces the old one.
type EmailOTP struct {
	Email     string    `json:"email" gorm:"primaryKey;size:255"`
	CodeHash  string    `json:"-" gorm:"size:255;not null"` // bcrypt hash, never the plaintext code
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
