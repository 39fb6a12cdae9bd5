package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := hashPassword("s3nha", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3nha")))

	_, err = hashPassword("", bcrypt.MinCost)
	assert.ErrorIs(t, err, errEmptyPassword)
}

func TestHashPasswordCmd(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("s3nha\n"))
	cmd.SetArgs([]string{"hash-password", "--cost", "4"})

	require.NoError(t, cmd.Execute())
	hash := strings.TrimSpace(out.String())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3nha")))
}

func TestPrintInvoice(t *testing.T) {
	var out bytes.Buffer
	printInvoice(&out, entities.Invoice{
		InvoiceNumber:  "NF-1",
		FiscalKey:      "35240112345678000190550010000012341000012345",
		Status:         entities.InvoiceStatusEmRota,
		Recipient:      "Mercado Central",
		City:           "Varginha",
		State:          "MG",
		CollectionDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})

	text := out.String()
	assert.Contains(t, text, "3524 0112")
	assert.Contains(t, text, "Varginha - MG")
	assert.Contains(t, text, "Entrega:      -")
}
