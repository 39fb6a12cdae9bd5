package response

import (
	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
	"github.com/IgorSouzaLima/rjlima/internal/domain/fiscalkey"
)

// TrackingResponse is the public view of an invoice. The proof photo is only
// exposed once the invoice is delivered.
type TrackingResponse struct {
	InvoiceNumber      string                  `json:"invoice_number"`
	FiscalKeyFormatted string                  `json:"fiscal_key_formatted"`
	Status             string                  `json:"status"`
	StatusColor        string                  `json:"status_color"`
	StatusIcon         string                  `json:"status_icon"`
	Delivered          bool                    `json:"delivered"`
	Recipient          string                  `json:"recipient"`
	City               string                  `json:"city"`
	State              string                  `json:"state"`
	CollectionDate     string                  `json:"collection_date"`
	DeliveryDate       string                  `json:"delivery_date"`
	Timeline           []entities.TimelineStep `json:"timeline"`
	ProofPhotoURL      string                  `json:"proof_photo_url,omitempty"`
}

func FromTrackedInvoice(inv entities.Invoice) TrackingResponse {
	return TrackingResponse{
		InvoiceNumber:      inv.InvoiceNumber,
		FiscalKeyFormatted: fiscalkey.Format(inv.FiscalKey),
		Status:             string(inv.Status),
		StatusColor:        entities.StatusColor(string(inv.Status)),
		StatusIcon:         entities.StatusIcon(string(inv.Status)),
		Delivered:          inv.Status.IsDelivered(),
		Recipient:          inv.Recipient,
		City:               inv.City,
		State:              inv.State,
		CollectionDate:     entities.DisplayDate(&inv.CollectionDate),
		DeliveryDate:       entities.DisplayDate(inv.DeliveryDate),
		Timeline:           inv.Timeline(),
		ProofPhotoURL:      inv.PublicProofPhotoURL(),
	}
}
