package entities

import "time"

// User represents a user entity in the database
type User struct {
	ID             string    `json:"id"` // UUID
	Username       string    `json:"username"`
	Name           string    `json:"name"`
	PasswordHash   string    `json:"-"` // Don't expose password hash in JSON
	Gender         string    `json:"gender"` // "male" or "female"
	ProfilePicture string    `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
