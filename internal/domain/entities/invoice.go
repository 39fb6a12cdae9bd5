package entities

import (
	"errors"
	"time"
)

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// ErrDuplicateFiscalKey is returned by invoice stores when the fiscal key is
// already used by another invoice.
var ErrDuplicateFiscalKey = errors.New("duplicate fiscal key")

// Invoice is the delivery record (nota fiscal) tracked through InvoiceStatus.
//
// Storage model:
//   - PK: id (generated on creation, immutable)
//   - unique: fiscal_key (44 digits)
//
// Proof photo:
//   - ProofPhotoPath is the object key inside the proof bucket.
//   - ProofPhotoURL is the public URL derived from it at upload time.
//     Both are set together and cleared together.
type Invoice struct {
	ID             string        `json:"id"`
	InvoiceNumber  string        `json:"invoice_number"`
	FiscalKey      string        `json:"fiscal_key"`
	CollectionDate time.Time     `json:"collection_date"`
	DeliveryDate   *time.Time    `json:"delivery_date,omitempty"`
	Recipient      string        `json:"recipient"`
	City           string        `json:"city"`
	State          string        `json:"state"`
	Status         InvoiceStatus `json:"status"`
	ProofPhotoURL  string        `json:"proof_photo_url,omitempty"`
	ProofPhotoPath string        `json:"proof_photo_path,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// HasProofPhoto reports whether a delivery photo is attached.
func (i Invoice) HasProofPhoto() bool {
	return i.ProofPhotoURL != "" || i.ProofPhotoPath != ""
}

// InvoicePatch is a partial update. Nil fields are left untouched.
type InvoicePatch struct {
	InvoiceNumber  *string
	FiscalKey      *string
	CollectionDate *time.Time
	Recipient      *string
	City           *string
	State          *string
	Status         *InvoiceStatus

	DeliveryDate      *time.Time
	ClearDeliveryDate bool

	ProofPhoto      *ProofPhoto
	ClearProofPhoto bool
}

// ProofPhoto pairs the stored object key with its public URL.
type ProofPhoto struct {
	Path string
	URL  string
}

// Apply returns a copy of inv with the patch applied. Timestamps are not touched.
func (p InvoicePatch) Apply(inv Invoice) Invoice {
	if p.InvoiceNumber != nil {
		inv.InvoiceNumber = *p.InvoiceNumber
	}
	if p.FiscalKey != nil {
		inv.FiscalKey = *p.FiscalKey
	}
	if p.CollectionDate != nil {
		inv.CollectionDate = *p.CollectionDate
	}
	if p.Recipient != nil {
		inv.Recipient = *p.Recipient
	}
	if p.City != nil {
		inv.City = *p.City
	}
	if p.State != nil {
		inv.State = *p.State
	}
	if p.Status != nil {
		inv.Status = *p.Status
	}
	if p.ClearDeliveryDate {
		inv.DeliveryDate = nil
	} else if p.DeliveryDate != nil {
		d := *p.DeliveryDate
		inv.DeliveryDate = &d
	}
	if p.ClearProofPhoto {
		inv.ProofPhotoURL = ""
		inv.ProofPhotoPath = ""
	} else if p.ProofPhoto != nil {
		inv.ProofPhotoURL = p.ProofPhoto.URL
		inv.ProofPhotoPath = p.ProofPhoto.Path
	}
	return inv
}

// IsEmpty reports whether the patch changes nothing.
func (p InvoicePatch) IsEmpty() bool {
	return p.InvoiceNumber == nil && p.FiscalKey == nil && p.CollectionDate == nil &&
		p.Recipient == nil && p.City == nil && p.State == nil && p.Status == nil &&
		p.DeliveryDate == nil && !p.ClearDeliveryDate &&
		p.ProofPhoto == nil && !p.ClearProofPhoto
}

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// DisplayDateLayout is the Brazilian DD/MM/YYYY date format.
const DisplayDateLayout = "02/01/2006"

// DisplayDate renders t as DD/MM/YYYY in UTC, or "-" when t is nil.
func DisplayDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.UTC().Format(DisplayDateLayout)
}
