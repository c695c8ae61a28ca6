package models

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

type User struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    []byte
	Role            UserRole
	Status          UserStatus
	IsEmailVerified bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
