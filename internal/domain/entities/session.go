package entities

import (
	"errors"
	"time"
)

// ErrCredentialsRejected is returned by auth providers when email and password
// do not match an account.
var ErrCredentialsRejected = errors.New("credentials rejected")

// Session is an authenticated admin session.
//
// Token is the opaque value carried by the session cookie or bearer header.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"-"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
