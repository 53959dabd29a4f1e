package domain

import "time"

// User is the domain entity for a registered account.
// PasswordHash is opaque to everything outside the auth package
// and is never serialized to clients.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        string
	FullName     string
	Disabled     bool
	CreatedAt    time.Time
}
