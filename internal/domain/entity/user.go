package entity

import "time"

// User is a back-office account. Accounts are created by an admin with a
// generated username and temporary password; they are deactivated with the
// IsActive flag, never hard-deleted.
type User struct {
	ID           string
	Email        string
	Username     string
	FullName     string
	Phone        string
	PasswordHash string // bcrypt, never plaintext past the usecase boundary
	IsActive     bool
	RoleID       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  *time.Time
}

// EntityID implements the persistable-entity contract.
func (u User) EntityID() string { return u.ID }
