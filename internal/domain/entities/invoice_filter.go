package entities

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// InvoiceFilter selects one page of the invoice listing.
//
// Page is 1-based. Status is an exact match; Search is a case-insensitive
// substring matched against invoice number, recipient and fiscal key.
type InvoiceFilter struct {
	Page     int
	PageSize int
	Status   string
	Search   string
}

// Normalized clamps page and page size into their valid ranges.
func (f InvoiceFilter) Normalized() InvoiceFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	return f
}

func (f InvoiceFilter) Offset() int {
	n := f.Normalized()
	return (n.Page - 1) * n.PageSize
}

func (f InvoiceFilter) Limit() int {
	return f.Normalized().PageSize
}
