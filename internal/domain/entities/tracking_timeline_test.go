package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoice_Timeline(t *testing.T) {
	collected, _ := ParseDate("2024-01-10")
	delivered, _ := ParseDate("2024-01-12")

	t.Run("awaiting collection", func(t *testing.T) {
		steps := Invoice{CollectionDate: collected, Status: InvoiceStatusAguardandoColeta}.Timeline()
		require.Len(t, steps, 3)
		assert.True(t, steps[0].Done)
		assert.Equal(t, "10/01/2024", steps[0].Detail)
		assert.False(t, steps[1].Done)
		assert.Equal(t, "Aguardando...", steps[1].Detail)
		assert.False(t, steps[2].Done)
	})

	t.Run("in route", func(t *testing.T) {
		steps := Invoice{CollectionDate: collected, Status: InvoiceStatusEmRota}.Timeline()
		assert.True(t, steps[1].Done)
		assert.False(t, steps[2].Done)
		assert.Equal(t, "Aguardando entrega", steps[2].Detail)
	})

	t.Run("delivered", func(t *testing.T) {
		steps := Invoice{CollectionDate: collected, DeliveryDate: &delivered, Status: InvoiceStatusEntregue}.Timeline()
		assert.True(t, steps[2].Done)
		assert.Equal(t, "12/01/2024", steps[2].Detail)
	})

	t.Run("delivered without date", func(t *testing.T) {
		steps := Invoice{CollectionDate: collected, Status: InvoiceStatusEntregue}.Timeline()
		assert.Equal(t, "-", steps[2].Detail)
	})
}

func TestInvoice_PublicProofPhotoURL(t *testing.T) {
	inv := Invoice{Status: InvoiceStatusEmRota, ProofPhotoURL: "http://x/p.jpg"}
	assert.Empty(t, inv.PublicProofPhotoURL())

	inv.Status = InvoiceStatusEntregue
	assert.Equal(t, "http://x/p.jpg", inv.PublicProofPhotoURL())
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "-", DisplayDate(nil))
	d := time.Date(2024, 3, 5, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "05/03/2024", DisplayDate(&d))
}
