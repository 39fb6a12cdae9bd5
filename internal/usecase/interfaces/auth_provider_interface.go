package interfaces

import (
	"context"

	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
)

// IAuthProvider abstracts password sign-in and session lookup.
//
// GetSession returns a zero Session (ID == "") for unknown, expired or
// tampered tokens. SignOut of an unknown token is not an error.
type IAuthProvider interface {
	SignInWithPassword(ctx context.Context, email, password string) (entities.Session, error)
	GetSession(ctx context.Context, token string) (entities.Session, error)
	SignOut(ctx context.Context, token string) error
}
