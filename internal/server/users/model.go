package users

import "time"

// User is a registered account. Email is stored trimmed and lowercased;
// PasswordHash always holds a bcrypt hash, never the plaintext.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
}
