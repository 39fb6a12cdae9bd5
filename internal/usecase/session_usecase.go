package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
	"github.com/IgorSouzaLima/rjlima/internal/usecase/interfaces"
)

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSignInFailed       = errors.New("sign in failed")
	ErrSignOutFailed      = errors.New("sign out failed")
)

// ISessionUseCase guards the admin panel.
//
// RequireAuth answers whether the token belongs to a live session; callers
// must stop handling the request when it returns false.

type ISessionUseCase interface {
	SignIn(ctx context.Context, email, password string) (entities.Session, error)
	GetSession(ctx context.Context, token string) (entities.Session, error)
	RequireAuth(ctx context.Context, token string) bool
	SignOut(ctx context.Context, token string) error
}

type SessionUseCase struct {
	provider interfaces.IAuthProvider
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(provider interfaces.IAuthProvider) *SessionUseCase {
	return &SessionUseCase{provider: provider}
}

func (u *SessionUseCase) SignIn(ctx context.Context, email, password string) (entities.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return entities.Session{}, ErrMissingCredentials
	}

	s, err := u.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, entities.ErrCredentialsRejected) {
			log.Printf("[session][usecase] sign-in rejected email=%s", email)
			return entities.Session{}, ErrInvalidCredentials
		}
		log.Printf("[session][usecase] sign-in failed email=%s err=%v", email, err)
		return entities.Session{}, fmt.Errorf("%w: %v", ErrSignInFailed, err)
	}
	if s.ID == "" {
		return entities.Session{}, ErrInvalidCredentials
	}
	log.Printf("[session][usecase] sign-in success email=%s session_id=%s", email, s.ID)
	return s, nil
}

func (u *SessionUseCase) GetSession(ctx context.Context, token string) (entities.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Session{}, nil
	}
	return u.provider.GetSession(ctx, token)
}

func (u *SessionUseCase) RequireAuth(ctx context.Context, token string) bool {
	s, err := u.GetSession(ctx, token)
	if err != nil {
		log.Printf("[session][usecase] session lookup failed err=%v", err)
		return false
	}
	return s.ID != ""
}

func (u *SessionUseCase) SignOut(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	if err := u.provider.SignOut(ctx, token); err != nil {
		log.Printf("[session][usecase] sign-out failed err=%v", err)
		return fmt.Errorf("%w: %v", ErrSignOutFailed, err)
	}
	return nil
}
