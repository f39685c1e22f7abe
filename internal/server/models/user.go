// Package models defines the server-side persistence entities.
package models

import "time"

// Role enumerates the access roles known to the service.
type Role string

const (
	// RoleUser is the default role right after signup, before an admin
	// promotes the account.
	RoleUser         Role = "USER"
	RoleClient       Role = "CLIENT"
	RolePsychologist Role = "PSYCHOLOGIST"
	RoleAdmin        Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleClient, RolePsychologist, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
