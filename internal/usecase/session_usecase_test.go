package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
	mock_interfaces "github.com/IgorSouzaLima/rjlima/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSessionUseCase_SignIn(t *testing.T) {
	t.Run("success normalizes email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIAuthProvider(ctrl)
		uc := NewSessionUseCase(provider)

		provider.EXPECT().SignInWithPassword(gomock.Any(), "admin@rjlima.com.br", "secret").
			Return(entities.Session{ID: "s1", Token: "tok", Email: "admin@rjlima.com.br"}, nil)

		s, err := uc.SignIn(context.Background(), "  Admin@RJLima.com.br ", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Token != "tok" {
			t.Fatalf("unexpected session: %+v", s)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIAuthProvider(ctrl)
		uc := NewSessionUseCase(provider)

		if _, err := uc.SignIn(context.Background(), " ", "x"); !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("expected ErrMissingCredentials, got %v", err)
		}
		if _, err := uc.SignIn(context.Background(), "a@b.c", ""); !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("rejected credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIAuthProvider(ctrl)
		uc := NewSessionUseCase(provider)

		provider.EXPECT().SignInWithPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Session{}, entities.ErrCredentialsRejected)

		if _, err := uc.SignIn(context.Background(), "a@b.c", "bad"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIAuthProvider(ctrl)
		uc := NewSessionUseCase(provider)

		provider.EXPECT().SignInWithPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Session{}, errors.New("boom"))

		if _, err := uc.SignIn(context.Background(), "a@b.c", "x"); !errors.Is(err, ErrSignInFailed) {
			t.Fatalf("expected ErrSignInFailed, got %v", err)
		}
	})
}

func TestSessionUseCase_RequireAuth(t *testing.T) {
	t.Run("empty token skips provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIAuthProvider(ctrl)
		uc := NewSessionUseCase(provider)

		if uc.RequireAuth(context.Background(), "") {
			t.Fatalf("expected unauthenticated")
		}
	})

	t.Run("live session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIAuthProvider(ctrl)
		uc := NewSessionUseCase(provider)

		provider.EXPECT().GetSession(gomock.Any(), "tok").Return(entities.Session{ID: "s1"}, nil)

		if !uc.RequireAuth(context.Background(), "tok") {
			t.Fatalf("expected authenticated")
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIAuthProvider(ctrl)
		uc := NewSessionUseCase(provider)

		provider.EXPECT().GetSession(gomock.Any(), "tok").Return(entities.Session{}, nil)

		if uc.RequireAuth(context.Background(), "tok") {
			t.Fatalf("expected unauthenticated")
		}
	})

	t.Run("lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIAuthProvider(ctrl)
		uc := NewSessionUseCase(provider)

		provider.EXPECT().GetSession(gomock.Any(), "tok").Return(entities.Session{}, errors.New("boom"))

		if uc.RequireAuth(context.Background(), "tok") {
			t.Fatalf("expected unauthenticated")
		}
	})
}

func TestSessionUseCase_SignOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock_interfaces.NewMockIAuthProvider(ctrl)
	uc := NewSessionUseCase(provider)

	if err := uc.SignOut(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	provider.EXPECT().SignOut(gomock.Any(), "tok").Return(errors.New("boom"))
	if err := uc.SignOut(context.Background(), "tok"); !errors.Is(err, ErrSignOutFailed) {
		t.Fatalf("expected ErrSignOutFailed, got %v", err)
	}
}
