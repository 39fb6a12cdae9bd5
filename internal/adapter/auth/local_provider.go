package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
	"github.com/IgorSouzaLima/rjlima/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// LocalProvider authenticates admins against bcrypt hashes held in config and
// issues HMAC-signed tokens for sessions kept in memory.
type LocalProvider struct {
	accounts map[string][]byte
	signer   *Signer
	store    *SessionStore
	ttl      time.Duration
	now      func() time.Time
	dummy    []byte
}

var _ interfaces.IAuthProvider = (*LocalProvider)(nil)

// NewLocalProvider registers one admin account. An empty hash disables sign-in.
func NewLocalProvider(email, passwordHash string, secret []byte, ttl time.Duration) *LocalProvider {
	p := &LocalProvider{
		accounts: map[string][]byte{},
		signer:   NewSigner(secret),
		store:    NewSessionStore(),
		ttl:      ttl,
		now:      func() time.Time { return time.Now().UTC() },
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" && passwordHash != "" {
		p.accounts[email] = []byte(passwordHash)
	} else {
		log.Printf("[auth][local] no admin account configured, sign-in disabled")
	}
	// Unknown emails are checked against this hash so both paths cost the same.
	p.dummy, _ = bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.MinCost)
	return p
}

func (p *LocalProvider) SignInWithPassword(_ context.Context, email, password string) (entities.Session, error) {
	hash, ok := p.accounts[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		_ = bcrypt.CompareHashAndPassword(p.dummy, []byte(password))
		return entities.Session{}, entities.ErrCredentialsRejected
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return entities.Session{}, entities.ErrCredentialsRejected
		}
		return entities.Session{}, err
	}

	now := p.now()
	if n := p.store.Prune(now); n > 0 {
		log.Printf("[auth][local] pruned expired sessions count=%d", n)
	}
	s := entities.Session{
		ID:        uuid.NewString(),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		CreatedAt: now,
		ExpiresAt: now.Add(p.ttl),
	}
	s.Token = p.signer.Token(s.ID, s.ExpiresAt.Unix())
	p.store.Save(s)
	return s, nil
}

func (p *LocalProvider) GetSession(_ context.Context, token string) (entities.Session, error) {
	id, exp, ok := p.signer.Parse(token)
	if !ok {
		return entities.Session{}, nil
	}
	now := p.now()
	if exp <= now.Unix() {
		return entities.Session{}, nil
	}
	s, ok := p.store.Get(id, now)
	if !ok || s.Token != token {
		return entities.Session{}, nil
	}
	return s, nil
}

func (p *LocalProvider) SignOut(_ context.Context, token string) error {
	if id, _, ok := p.signer.Parse(token); ok {
		p.store.Delete(id)
	}
	return nil
}
