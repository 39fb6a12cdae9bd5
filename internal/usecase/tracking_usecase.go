package usecase

import (
	"context"
	"log"

	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
	"github.com/IgorSouzaLima/rjlima/internal/domain/fiscalkey"
	"github.com/IgorSouzaLima/rjlima/internal/usecase/interfaces"
)

// ITrackingUseCase is the public lookup of an invoice by its fiscal key.
//
// The raw input may contain separators or trailing garbage; it is reduced to
// digits (at most 44) before validation. A missing record and a failed lookup
// are both reported as ErrInvoiceNotFound to the public.

type ITrackingUseCase interface {
	Track(ctx context.Context, rawKey string) (entities.Invoice, error)
}

type TrackingUseCase struct {
	repo interfaces.IInvoiceRepository
}

var _ ITrackingUseCase = (*TrackingUseCase)(nil)

func NewTrackingUseCase(repo interfaces.IInvoiceRepository) *TrackingUseCase {
	return &TrackingUseCase{repo: repo}
}

func (u *TrackingUseCase) Track(ctx context.Context, rawKey string) (entities.Invoice, error) {
	key := fiscalkey.Sanitize(rawKey)
	if !fiscalkey.IsValid(key) {
		return entities.Invoice{}, ErrInvalidFiscalKey
	}

	inv, err := u.repo.GetByFiscalKey(ctx, key)
	if err != nil {
		log.Printf("[tracking][usecase] lookup failed fiscal_key=%s err=%v", key, err)
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	if inv.ID == "" {
		log.Printf("[tracking][usecase] not found fiscal_key=%s", key)
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	log.Printf("[tracking][usecase] found fiscal_key=%s id=%s status=%s", key, inv.ID, inv.Status)
	return inv, nil
}
