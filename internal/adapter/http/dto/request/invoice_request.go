package request

import (
	"strings"

	"github.com/IgorSouzaLima/rjlima/internal/domain/fiscalkey"
	"github.com/IgorSouzaLima/rjlima/internal/usecase"
	"github.com/IgorSouzaLima/rjlima/internal/usecase/interfaces"
)

// InvoiceForm is the admin create/edit form, sent as multipart/form-data by
// both the admin pages and the JSON API (with an optional proof_photo file).
type InvoiceForm struct {
	InvoiceNumber    string `form:"invoice_number"`
	FiscalKey        string `form:"fiscal_key"`
	CollectionDate   string `form:"collection_date"`
	DeliveryDate     string `form:"delivery_date"`
	Recipient        string `form:"recipient"`
	City             string `form:"city"`
	State            string `form:"state"`
	Status           string `form:"status"`
	RemoveProofPhoto bool   `form:"remove_proof_photo"`
}

// ToCommand builds the save command. The fiscal key keeps digits only and is
// not capped, so an overlong key still fails validation.
func (f InvoiceForm) ToCommand(id string, photo *interfaces.ProofFile) usecase.SaveInvoiceCommand {
	key := strings.TrimSpace(f.FiscalKey)
	if key != "" {
		key = fiscalkey.Digits(key)
	}
	return usecase.SaveInvoiceCommand{
		ID:               strings.TrimSpace(id),
		InvoiceNumber:    f.InvoiceNumber,
		FiscalKey:        key,
		CollectionDate:   f.CollectionDate,
		DeliveryDate:     f.DeliveryDate,
		Recipient:        f.Recipient,
		City:             f.City,
		State:            f.State,
		Status:           f.Status,
		RemoveProofPhoto: f.RemoveProofPhoto,
		ProofPhoto:       photo,
	}
}

// InvoiceListQuery holds the admin listing query string.
type InvoiceListQuery struct {
	Page   int    `form:"page"`
	Search string `form:"search"`
	Status string `form:"status"`
}

func (q InvoiceListQuery) ToListState() usecase.ListState {
	return usecase.NewListState(q.Page, q.Search, q.Status)
}
