package domain

import "time"

type Account struct {
	ID           int64
	Email        string
	Username     string
	PasswordHash string // argon2id PHC string
	Phone        string // optional
	Active       bool
	Verified     bool
	RegisteredAt time.Time
}
