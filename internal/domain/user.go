package domain

import "time"

// Role represents the authorization level of an account.
type Role string

const (
	RoleUser   Role = "USER"
	RoleClient Role = "CLIENT"
	RoleAdmin  Role = "ADMIN"
)

// ParseRole maps a stored role value to a Role. Unknown values fall back to USER.
func ParseRole(value string) Role {
	switch Role(value) {
	case RoleUser, RoleClient, RoleAdmin:
		return Role(value)
	default:
		return RoleUser
	}
}

// User is the domain model for accounts: influencers, campaign clients, admins.
type User struct {
	ID           int64
	Email        string
	Nickname     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
