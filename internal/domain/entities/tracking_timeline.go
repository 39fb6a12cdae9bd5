package entities

import "time"

type TimelineStepKey string

const (
	TimelineCollected TimelineStepKey = "collected"
	TimelineInTransit TimelineStepKey = "in_transit"
	TimelineDelivered TimelineStepKey = "delivered"
)

// TimelineStep is one milestone of the public tracking view.
type TimelineStep struct {
	Key    TimelineStepKey `json:"key"`
	Label  string          `json:"label"`
	Detail string          `json:"detail"`
	Icon   string          `json:"icon"`
	Done   bool            `json:"done"`
	Date   *time.Time      `json:"date,omitempty"`
}

// Timeline derives the three tracking milestones from the invoice status.
// Collection is always shown as done with its date; transit is done unless the
// invoice still awaits collection; delivery is done only once delivered.
func (i Invoice) Timeline() []TimelineStep {
	collected := i.CollectionDate
	steps := []TimelineStep{
		{Key: TimelineCollected, Label: "Coleta Realizada", Detail: DisplayDate(&collected), Icon: "fa-box-open", Done: true, Date: &collected},
		{Key: TimelineInTransit, Label: "Em Transito", Detail: "Carga em deslocamento", Icon: "fa-truck", Done: true},
		{Key: TimelineDelivered, Label: "Entregue", Detail: "Aguardando entrega", Icon: "fa-circle-check"},
	}
	if i.Status == InvoiceStatusAguardandoColeta {
		steps[1].Done = false
		steps[1].Detail = "Aguardando..."
	}
	if i.Status.IsDelivered() {
		steps[2].Done = true
		steps[2].Detail = DisplayDate(i.DeliveryDate)
		steps[2].Date = i.DeliveryDate
	}
	return steps
}

// PublicProofPhotoURL is the photo shown to the public: only delivered
// invoices expose it.
func (i Invoice) PublicProofPhotoURL() string {
	if !i.Status.IsDelivered() {
		return ""
	}
	return i.ProofPhotoURL
}
