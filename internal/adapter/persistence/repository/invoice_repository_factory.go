package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/IgorSouzaLima/rjlima/internal/infrastructure/config"
	"github.com/IgorSouzaLima/rjlima/internal/infrastructure/database"
	"github.com/IgorSouzaLima/rjlima/internal/usecase/interfaces"
)

// NewInvoiceRepository opens the store selected by INVOICE_STORE. The returned
// close func releases its connections.
func NewInvoiceRepository(ctx context.Context, cfg *config.Config) (interfaces.IInvoiceRepository, func(), error) {
	switch cfg.InvoiceStore {
	case config.StorePostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("[invoice][repository] using postgres store")
		return NewInvoicePostgresRepository(pool), pool.Close, nil
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("[invoice][repository] using dynamodb store table=%s keys_table=%s", cfg.InvoicesTable, cfg.FiscalKeysTable)
		return NewInvoiceDynamoRepository(ddb, cfg.InvoicesTable, cfg.FiscalKeysTable), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown invoice store %q", cfg.InvoiceStore)
	}
}
