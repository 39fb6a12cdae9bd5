package entities

// InvoiceStatus represents the delivery lifecycle of an invoice (nota fiscal).
//
// The values are presented as an ordered progression but any transition is
// accepted: operators correct mistakes by moving records backwards.
type InvoiceStatus string

const (
	InvoiceStatusAguardandoColeta        InvoiceStatus = "Aguardando coleta"
	InvoiceStatusAguardandoColetaEntrega InvoiceStatus = "Aguardando coleta para entrega"
	InvoiceStatusEmRota                  InvoiceStatus = "Em rota"
	InvoiceStatusEntregue                InvoiceStatus = "Entregue"
)

// InvoiceStatuses lists every status in display order.
var InvoiceStatuses = []InvoiceStatus{
	InvoiceStatusAguardandoColeta,
	InvoiceStatusAguardandoColetaEntrega,
	InvoiceStatusEmRota,
	InvoiceStatusEntregue,
}

const (
	StatusColorFallback = "gray"
	StatusIconFallback  = "fa-question"
)

var statusColors = map[InvoiceStatus]string{
	InvoiceStatusEntregue:                "green",
	InvoiceStatusEmRota:                  "blue",
	InvoiceStatusAguardandoColeta:        "yellow",
	InvoiceStatusAguardandoColetaEntrega: "orange",
}

var statusIcons = map[InvoiceStatus]string{
	InvoiceStatusEntregue:                "fa-circle-check",
	InvoiceStatusEmRota:                  "fa-truck",
	InvoiceStatusAguardandoColeta:        "fa-clock",
	InvoiceStatusAguardandoColetaEntrega: "fa-box",
}

// ParseInvoiceStatus returns the status matching s exactly.
func ParseInvoiceStatus(s string) (InvoiceStatus, bool) {
	st := InvoiceStatus(s)
	_, ok := statusColors[st]
	return st, ok
}

// IsDelivered reports whether the status is the terminal one.
func (s InvoiceStatus) IsDelivered() bool {
	return s == InvoiceStatusEntregue
}

// StatusColor maps a stored status to its display color token.
// Stored statuses are free text, so unknown values get StatusColorFallback.
func StatusColor(status string) string {
	if c, ok := statusColors[InvoiceStatus(status)]; ok {
		return c
	}
	return StatusColorFallback
}

// StatusIcon maps a stored status to its icon token, StatusIconFallback when unknown.
func StatusIcon(status string) string {
	if i, ok := statusIcons[InvoiceStatus(status)]; ok {
		return i
	}
	return StatusIconFallback
}
