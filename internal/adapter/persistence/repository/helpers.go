package repository

import (
	"sort"
	"strings"
	"time"

	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
)

func valueOrDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// searchText is the lower-cased haystack matched by InvoiceFilter.Search.
func searchText(inv entities.Invoice) string {
	return strings.ToLower(strings.Join([]string{inv.InvoiceNumber, inv.Recipient, inv.FiscalKey}, "\n"))
}

// sortInvoices orders by collection date, newest first, then by creation time.
func sortInvoices(items []entities.Invoice) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.CollectionDate.Equal(b.CollectionDate) {
			return a.CollectionDate.After(b.CollectionDate)
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

// pageOf returns the window of items selected by filter.
func pageOf(items []entities.Invoice, filter entities.InvoiceFilter) []entities.Invoice {
	offset := filter.Offset()
	if offset >= len(items) {
		return []entities.Invoice{}
	}
	end := min(offset+filter.Limit(), len(items))
	return items[offset:end]
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return entities.FormatDate(*t)
}

func parseOptionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := entities.ParseDate(s)
	if err != nil {
		return nil
	}
	return &t
}
