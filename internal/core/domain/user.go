package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserType is the role a user signs up with.
type UserType string

const (
	UserTypeClient  UserType = "client"
	UserTypePartner UserType = "partner"
	UserTypeAdmin   UserType = "admin"
)

// IsValid reports whether the value is a known UserType.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeClient, UserTypePartner, UserTypeAdmin:
		return true
	}
	return false
}

// UserMetadata is the profile captured at sign-up.
type UserMetadata struct {
	FullName string   `json:"full_name"`
	Phone    *string  `json:"phone,omitempty"`
	UserType UserType `json:"user_type"`
}

// User is an authenticated principal. PasswordHash never leaves the service.
type User struct {
	ID           uuid.UUID    `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Metadata     UserMetadata `json:"user_metadata"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Session is the identity handed explicitly to every operation that needs
// one. TokenID identifies the session for revocation.
type Session struct {
	Token     string    `json:"access_token"`
	TokenID   string    `json:"-"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Is reports whether the session belongs to a user of the given type.
func (s Session) Is(t UserType) bool {
	return s.User.Metadata.UserType == t
}
