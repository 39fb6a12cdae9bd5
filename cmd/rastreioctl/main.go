package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "rastreioctl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rastreioctl",
		Short: "RJ Lima operator CLI",
		Long: `rastreioctl prepares the invoice store and proof bucket, hashes admin passwords
and looks up invoices by fiscal key from the terminal.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newSetupCmd(),
		newHashPasswordCmd(),
		newTrackCmd(),
	)
	return cmd
}
