package model

import "time"

// VerifiedEmail marks an email address that passed OTP verification and may
// register within the verification window. The record is consumed by a
// successful registration.
type VerifiedEmail struct {
	Email      string    `json:"email" gorm:"primaryKey;size:255"`
	VerifiedAt time.Time `json:"verified_at" gorm:"not null"`
}
