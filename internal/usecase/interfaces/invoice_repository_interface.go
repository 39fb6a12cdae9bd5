package interfaces

import (
	"context"

	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
)

// IInvoiceRepository abstracts persistence for Invoice.
//
// Conventions shared by every implementation:
//   - lookups return a zero Invoice (ID == "") when nothing matches
//   - Create/Update return entities.ErrDuplicateFiscalKey on key collisions
//   - Update refreshes updated_at on every call
//   - Delete of a missing id is not an error

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByFiscalKey(ctx context.Context, fiscalKey string) (entities.Invoice, error)
	List(ctx context.Context, filter entities.InvoiceFilter) ([]entities.Invoice, int, error)
	Update(ctx context.Context, id string, patch entities.InvoicePatch) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
}
