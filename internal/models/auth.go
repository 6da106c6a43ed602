package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserRole distinguishes the two dashboard audiences.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

// SignupRequest registers a new student. There is no password: identity is
// the (name, phone, class) tuple, which is accepted for this deployment.
type SignupRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Class string `json:"class" validate:"required,oneof='Class 5' 'Class 6' 'Class 7' 'Class 8' 'Class 9' 'Class 10'"`
}

// LoginRequest identifies an existing student (or the sentinel admin).
type LoginRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Class string `json:"class" validate:"required,oneof='Class 5' 'Class 6' 'Class 7' 'Class 8' 'Class 9' 'Class 10'"`
}

// UserProfile is the identity projection returned to clients alongside the
// session token. For students it mirrors the stored row; for the admin it is
// a fixed synthetic identity.
type UserProfile struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Phone  string         `json:"phone"`
	Role   UserRole       `json:"role"`
	Status ApprovalStatus `json:"status"`
	Class  string         `json:"class,omitempty"`
}

// AuthResponse carries the issued session token and profile.
type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresIn int64       `json:"expires_in"`
	IssuedAt  time.Time   `json:"issued_at"`
	User      UserProfile `json:"user"`
}

// SessionClaims is the JWT payload for session tokens. Role is carried for
// route gating only; student status is always re-read from the store.
type SessionClaims struct {
	UserID string   `json:"user_id"`
	Role   UserRole `json:"role"`
	Name   string   `json:"name"`
	Phone  string   `json:"phone"`
	Class  string   `json:"class,omitempty"`
	jwt.RegisteredClaims
}
