package receipt

import (
	"bytes"
	"testing"
	"time"

	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
)

func TestRender(t *testing.T) {
	collected, _ := entities.ParseDate("2024-01-10")
	delivered, _ := entities.ParseDate("2024-01-12")
	inv := entities.Invoice{
		ID:             "inv-1",
		InvoiceNumber:  "NF-1001",
		FiscalKey:      "35240112345678000190550010000012341000012345",
		CollectionDate: collected,
		DeliveryDate:   &delivered,
		Recipient:      "Padaria São João",
		City:           "Três Corações",
		State:          "MG",
		Status:         entities.InvoiceStatusEntregue,
		ProofPhotoURL:  "http://cdn/proof-photos/proofs/a.jpg",
	}

	var buf bytes.Buffer
	if err := Render(&buf, inv, time.Date(2024, 1, 13, 10, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected a PDF document")
	}
}
