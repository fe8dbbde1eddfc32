package domain

import "time"

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

type User struct {
	ID        uint64
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
	Role      UserRole
	Gender    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
