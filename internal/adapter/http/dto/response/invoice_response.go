package response

import (
	"time"

	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
	"github.com/IgorSouzaLima/rjlima/internal/domain/fiscalkey"
	"github.com/IgorSouzaLima/rjlima/internal/usecase"
)

type InvoiceResponse struct {
	ID                 string    `json:"id"`
	InvoiceNumber      string    `json:"invoice_number"`
	FiscalKey          string    `json:"fiscal_key"`
	FiscalKeyFormatted string    `json:"fiscal_key_formatted"`
	CollectionDate     string    `json:"collection_date"`
	DeliveryDate       string    `json:"delivery_date,omitempty"`
	Recipient          string    `json:"recipient"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Status             string    `json:"status"`
	StatusColor        string    `json:"status_color"`
	StatusIcon         string    `json:"status_icon"`
	ProofPhotoURL      string    `json:"proof_photo_url,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	res := InvoiceResponse{
		ID:                 inv.ID,
		InvoiceNumber:      inv.InvoiceNumber,
		FiscalKey:          inv.FiscalKey,
		FiscalKeyFormatted: fiscalkey.Format(inv.FiscalKey),
		CollectionDate:     entities.FormatDate(inv.CollectionDate),
		Recipient:          inv.Recipient,
		City:               inv.City,
		State:              inv.State,
		Status:             string(inv.Status),
		StatusColor:        entities.StatusColor(string(inv.Status)),
		StatusIcon:         entities.StatusIcon(string(inv.Status)),
		ProofPhotoURL:      inv.ProofPhotoURL,
		CreatedAt:          inv.CreatedAt,
		UpdatedAt:          inv.UpdatedAt,
	}
	if inv.DeliveryDate != nil {
		res.DeliveryDate = entities.FormatDate(*inv.DeliveryDate)
	}
	return res
}

type InvoiceListResponse struct {
	Items      []InvoiceResponse  `json:"items"`
	Pagination usecase.Pagination `json:"pagination"`
}

func FromInvoicePage(page usecase.InvoicePage) InvoiceListResponse {
	items := make([]InvoiceResponse, 0, len(page.Items))
	for _, inv := range page.Items {
		items = append(items, FromInvoice(inv))
	}
	return InvoiceListResponse{Items: items, Pagination: page.Pagination}
}
