package request

import (
	"fmt"
	"net/url"
	"strings"
)

// WhatsAppNumber receives quote requests from the marketing page.
const WhatsAppNumber = "5535999581894"

// QuoteRequest is the freight quote form of the marketing page.
type QuoteRequest struct {
	Name        string `form:"nome"`
	Phone       string `form:"telefone"`
	Origin      string `form:"origem"`
	Destination string `form:"destino"`
	Description string `form:"descricao"`
}

// WhatsAppURL returns the wa.me link carrying the formatted quote message.
func (q QuoteRequest) WhatsAppURL() string {
	msg := fmt.Sprintf("*Solicitação de Orçamento - RJ Lima*\n\n"+
		"*Empresa/Nome:* %s\n*Telefone:* %s\n*Origem:* %s\n*Destino:* %s\n*Carga:* %s",
		strings.TrimSpace(q.Name), strings.TrimSpace(q.Phone), strings.TrimSpace(q.Origin),
		strings.TrimSpace(q.Destination), strings.TrimSpace(q.Description))
	return "https://wa.me/" + WhatsAppNumber + "?text=" + url.QueryEscape(msg)
}
