package domain

import "time"

// PasswordReset records an issued reset token so it can be used only once.
type PasswordReset struct {
	TokenHash string // fingerprint of the token jti
	AccountID int64
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}
