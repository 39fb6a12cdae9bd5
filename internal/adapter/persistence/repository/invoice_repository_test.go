package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, _ := entities.ParseDate(s)
	return t
}

func TestSortInvoices(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	items := []entities.Invoice{
		{ID: "old", CollectionDate: day("2024-01-01"), CreatedAt: base},
		{ID: "new-late", CollectionDate: day("2024-02-01"), CreatedAt: base.Add(time.Hour)},
		{ID: "new-early", CollectionDate: day("2024-02-01"), CreatedAt: base},
	}

	sortInvoices(items)

	ids := []string{items[0].ID, items[1].ID, items[2].ID}
	assert.Equal(t, []string{"new-late", "new-early", "old"}, ids)
}

func TestPageOf(t *testing.T) {
	items := make([]entities.Invoice, 23)
	for i := range items {
		items[i].ID = fmt.Sprint(i)
	}

	page := pageOf(items, entities.InvoiceFilter{Page: 3, PageSize: 10})
	require.Len(t, page, 3)
	assert.Equal(t, "20", page[0].ID)

	assert.Empty(t, pageOf(items, entities.InvoiceFilter{Page: 4, PageSize: 10}))
	assert.Len(t, pageOf(items, entities.InvoiceFilter{}), 10)
}

func TestSearchText(t *testing.T) {
	inv := entities.Invoice{InvoiceNumber: "NF-77", Recipient: "Mercado CENTRAL", FiscalKey: "3524"}
	assert.Equal(t, "nf-77\nmercado central\n3524", searchText(inv))
}

func TestInvoiceItemMapping(t *testing.T) {
	delivered := day("2024-01-12")
	created := time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC)
	inv := entities.Invoice{
		ID:             "inv-1",
		InvoiceNumber:  "NF-1",
		FiscalKey:      "35240112345678000190550010000012341000012345",
		CollectionDate: day("2024-01-10"),
		DeliveryDate:   &delivered,
		Recipient:      "Loja",
		City:           "Campinas",
		State:          "SP",
		Status:         entities.InvoiceStatusEntregue,
		ProofPhotoURL:  "http://cdn/proof-photos/proofs/a.jpg",
		ProofPhotoPath: "proofs/a.jpg",
		CreatedAt:      created,
		UpdatedAt:      created,
	}

	it := toInvoiceItem(inv)
	assert.Equal(t, "2024-01-10", it.CollectionDate)
	assert.Equal(t, "2024-01-12", it.DeliveryDate)
	assert.Contains(t, it.SearchText, "loja")

	back := fromInvoiceItem(it)
	assert.Equal(t, inv, back)

	it.DeliveryDate = ""
	assert.Nil(t, fromInvoiceItem(it).DeliveryDate)
}

func TestTransactionConditionFailed(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("None")},
			{Code: aws.String("ConditionalCheckFailed")},
		},
	})

	assert.True(t, transactionConditionFailed(err, 1))
	assert.False(t, transactionConditionFailed(err, 0))
	assert.False(t, transactionConditionFailed(err, 5))
	assert.False(t, transactionConditionFailed(fmt.Errorf("other"), 1))
}

func TestListConditions(t *testing.T) {
	where, args := listConditions(entities.InvoiceFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = listConditions(entities.InvoiceFilter{Status: "Entregue", Search: " 50%_off "})
	assert.Equal(t, ` WHERE status = $1 AND (invoice_number ILIKE $2 ESCAPE '\' OR recipient ILIKE $2 ESCAPE '\' OR fiscal_key ILIKE $2 ESCAPE '\')`, where)
	assert.Equal(t, []any{"Entregue", `%50\%\_off%`}, args)
}

func TestUpdateAssignments(t *testing.T) {
	num := "NF-2"
	sets, args := updateAssignments(entities.InvoicePatch{
		InvoiceNumber:     &num,
		ClearDeliveryDate: true,
		ProofPhoto:        &entities.ProofPhoto{Path: "proofs/a.jpg", URL: "u"},
	})
	assert.Equal(t, []string{"invoice_number=$1", "delivery_date=NULL", "proof_photo_url=$2", "proof_photo_path=$3"}, sets)
	assert.Equal(t, []any{"NF-2", "u", "proofs/a.jpg"}, args)

	sets, args = updateAssignments(entities.InvoicePatch{ClearProofPhoto: true})
	assert.Equal(t, []string{"proof_photo_url=NULL", "proof_photo_path=NULL"}, sets)
	assert.Empty(t, args)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(fmt.Errorf("boom")))
}
