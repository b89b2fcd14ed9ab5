package models

import "time"

// User is an office staff account. Office staff drive the full lifecycle;
// employees (drivers/helpers) authenticate separately through the mobile surface.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	FullName     string    `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Role         string    `bson:"role" json:"role"` // "admin" or "staff"
	PasswordHash string    `bson:"passwordHash" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
