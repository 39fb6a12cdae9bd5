package receipt

import (
	"fmt"
	"io"
	"time"

	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
	"github.com/IgorSouzaLima/rjlima/internal/domain/fiscalkey"

	"github.com/jung-kurt/gofpdf"
)

const companyName = "RJ Lima Transportes"

// Render writes a one-page A4 tracking receipt for inv.
func Render(w io.Writer, inv entities.Invoice, issuedAt time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Comprovante de rastreamento "+inv.InvoiceNumber), false)
	pdf.SetAuthor(companyName, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, tr(companyName), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, tr("Comprovante de rastreamento"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, tr("Nota Fiscal "+inv.InvoiceNumber), "B", 1, "L", false, 0, "")
	pdf.Ln(2)

	field := func(label, value string) {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(50, 8, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 8, tr(value), "", "L", false)
	}
	field("Status", string(inv.Status))
	field("Destinatario", inv.Recipient)
	field("Destino", fmt.Sprintf("%s - %s", inv.City, inv.State))
	field("Chave da Nota Fiscal", fiscalkey.Format(inv.FiscalKey))
	field("Data de coleta", entities.DisplayDate(&inv.CollectionDate))
	field("Data de entrega", entities.DisplayDate(inv.DeliveryDate))
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 10, tr("Andamento"), "B", 1, "L", false, 0, "")
	for _, step := range inv.Timeline() {
		mark := "[ ]"
		if step.Done {
			mark = "[x]"
		}
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(12, 8, mark, "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, tr(step.Label), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, tr(step.Detail), "", 1, "L", false, 0, "")
	}

	if url := inv.PublicProofPhotoURL(); url != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 6, tr("Foto do comprovante de entrega: "+url), "", "L", false)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 6, tr("Emitido em "+issuedAt.UTC().Format("02/01/2006 15:04")+" UTC"), "", 1, "L", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render receipt: %w", err)
	}
	return nil
}
