package domain

import "time"

// Professional owns clients. Code is the PROF_ prefix every one of its
// clients' unique codes starts with.
type Professional struct {
	ID           int64
	Username     string
	DisplayName  string
	PasswordHash string // argon2 encoded
	Code         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
