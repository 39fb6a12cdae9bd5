package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
	mock_interfaces "github.com/IgorSouzaLima/rjlima/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTrackingUseCase_Track(t *testing.T) {
	t.Run("formatted input is sanitized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewTrackingUseCase(repo)

		repo.EXPECT().GetByFiscalKey(gomock.Any(), testFiscalKey).Return(entities.Invoice{ID: "inv-1", FiscalKey: testFiscalKey}, nil)

		inv, err := uc.Track(context.Background(), "3524 0112 3456 7800 0190 5500 1000 0012 3410 0001 2345")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.ID != "inv-1" {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
	})

	t.Run("extra digits are cut at 44", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewTrackingUseCase(repo)

		repo.EXPECT().GetByFiscalKey(gomock.Any(), testFiscalKey).Return(entities.Invoice{ID: "inv-1"}, nil)

		if _, err := uc.Track(context.Background(), testFiscalKey+"999"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("short key never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewTrackingUseCase(repo)

		_, err := uc.Track(context.Background(), testFiscalKey[:43])
		if !errors.Is(err, ErrInvalidFiscalKey) {
			t.Fatalf("expected ErrInvalidFiscalKey, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewTrackingUseCase(repo)

		repo.EXPECT().GetByFiscalKey(gomock.Any(), testFiscalKey).Return(entities.Invoice{}, nil)

		_, err := uc.Track(context.Background(), testFiscalKey)
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("store error reported as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewTrackingUseCase(repo)

		repo.EXPECT().GetByFiscalKey(gomock.Any(), testFiscalKey).Return(entities.Invoice{}, errors.New("timeout"))

		_, err := uc.Track(context.Background(), testFiscalKey)
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}
