package domain

import "time"

// LocalUserID is the implicit account used by the CLI when semestra runs
// without the HTTP server.
const LocalUserID = "local"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}
