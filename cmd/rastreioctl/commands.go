package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/IgorSouzaLima/rjlima/internal/adapter/persistence/repository"
	"github.com/IgorSouzaLima/rjlima/internal/adapter/storage"
	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
	"github.com/IgorSouzaLima/rjlima/internal/domain/fiscalkey"
	"github.com/IgorSouzaLima/rjlima/internal/infrastructure/config"
	"github.com/IgorSouzaLima/rjlima/internal/infrastructure/database"
	"github.com/IgorSouzaLima/rjlima/internal/usecase"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func newSetupCmd() *cobra.Command {
	var skipStorage bool
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create the invoice tables (or schema) and the proof bucket",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			switch cfg.InvoiceStore {
			case config.StorePostgres:
				pool, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
				if err != nil {
					return err
				}
				defer pool.Close()
				if err := database.EnsureSchema(ctx, pool); err != nil {
					return err
				}
			default:
				ddb, err := database.ConnectDynamoDB(ctx, cfg)
				if err != nil {
					return err
				}
				if err := database.EnsureDynamoTables(ctx, ddb, cfg.InvoicesTable, cfg.FiscalKeysTable); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "invoice store ready (%s)\n", cfg.InvoiceStore)

			if skipStorage {
				return nil
			}
			store, err := storage.NewProofMinioStorage(cfg)
			if err != nil {
				return err
			}
			if err := store.EnsureBucket(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "proof bucket ready (%s)\n", cfg.ProofBucket)
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipStorage, "skip-storage", false, "Do not create the proof photo bucket")
	return cmd
}

func newHashPasswordCmd() *cobra.Command {
	var cost int
	cmd := &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print the bcrypt hash to use as ADMIN_PASSWORD_HASH",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password := ""
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := readLine(cmd.InOrStdin())
				if err != nil {
					return err
				}
				password = line
			}
			hash, err := hashPassword(password, cost)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	return cmd
}

func newTrackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "track <fiscal-key>",
		Short: "Look up an invoice by fiscal key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			repo, closeRepo, err := repository.NewInvoiceRepository(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeRepo()

			inv, err := usecase.NewTrackingUseCase(repo).Track(ctx, args[0])
			if err != nil {
				return err
			}
			printInvoice(cmd.OutOrStdout(), inv)
			return nil
		},
	}
}

var errEmptyPassword = errors.New("password must not be empty")

func hashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", errEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printInvoice(w io.Writer, inv entities.Invoice) {
	fmt.Fprintf(w, "Nota fiscal:  %s\n", inv.InvoiceNumber)
	fmt.Fprintf(w, "Chave:        %s\n", fiscalkey.Format(inv.FiscalKey))
	fmt.Fprintf(w, "Status:       %s\n", inv.Status)
	fmt.Fprintf(w, "Destinatario: %s\n", inv.Recipient)
	fmt.Fprintf(w, "Destino:      %s - %s\n", inv.City, inv.State)
	fmt.Fprintf(w, "Coleta:       %s\n", entities.DisplayDate(&inv.CollectionDate))
	fmt.Fprintf(w, "Entrega:      %s\n", entities.DisplayDate(inv.DeliveryDate))
}
