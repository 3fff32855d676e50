package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// User roles
const (
	RoleCandidate = "candidate"
	RoleCompany   = "company"
	RoleAdmin     = "admin"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	SetVerified(ctx context.Context, id string, verified bool) error
}

type AuthUsecase interface {
	Register(ctx context.Context, email, username, password, role string) (*User, error)
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
	AssignRole(ctx context.Context, userID string, role string) error
}
