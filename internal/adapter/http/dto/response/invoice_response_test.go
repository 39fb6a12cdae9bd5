package response

import (
	"testing"
	"time"

	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
	"github.com/IgorSouzaLima/rjlima/internal/usecase"
)

func sampleInvoice() entities.Invoice {
	collected, _ := entities.ParseDate("2024-01-10")
	return entities.Invoice{
		ID:             "inv-1",
		InvoiceNumber:  "NF-1",
		FiscalKey:      "35240112345678000190550010000012341000012345",
		CollectionDate: collected,
		Recipient:      "Loja",
		City:           "Campinas",
		State:          "SP",
		Status:         entities.InvoiceStatusEmRota,
		ProofPhotoURL:  "http://cdn/proof-photos/proofs/a.jpg",
		CreatedAt:      time.Now().UTC(),
	}
}

func TestFromInvoice(t *testing.T) {
	res := FromInvoice(sampleInvoice())

	if res.FiscalKeyFormatted != "3524 0112 3456 7800 0190 5500 1000 0012 3410 0001 2345" {
		t.Fatalf("unexpected formatted key %q", res.FiscalKeyFormatted)
	}
	if res.CollectionDate != "2024-01-10" || res.DeliveryDate != "" {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.StatusColor != "blue" || res.StatusIcon != "fa-truck" {
		t.Fatalf("unexpected status tokens: %+v", res)
	}
	if res.ProofPhotoURL == "" {
		t.Fatalf("admin view keeps the photo url")
	}
}

func TestFromInvoicePage(t *testing.T) {
	res := FromInvoicePage(usecase.InvoicePage{Pagination: usecase.NewPagination(1, 10, 0)})
	if res.Items == nil || len(res.Items) != 0 {
		t.Fatalf("expected empty non-nil items")
	}
}

func TestFromTrackedInvoice(t *testing.T) {
	inv := sampleInvoice()

	res := FromTrackedInvoice(inv)
	if res.ProofPhotoURL != "" {
		t.Fatalf("photo must stay hidden before delivery")
	}
	if len(res.Timeline) != 3 || res.Delivered {
		t.Fatalf("unexpected tracking view: %+v", res)
	}

	delivered, _ := entities.ParseDate("2024-01-12")
	inv.Status = entities.InvoiceStatusEntregue
	inv.DeliveryDate = &delivered
	res = FromTrackedInvoice(inv)
	if res.ProofPhotoURL == "" || res.DeliveryDate != "12/01/2024" || !res.Delivered {
		t.Fatalf("unexpected delivered view: %+v", res)
	}
}
