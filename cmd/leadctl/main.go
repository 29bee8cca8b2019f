package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "leadctl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leadctl",
		Short: "Lead console CLI",
		Long: `leadctl drives the lead-management bulk upload flow from the terminal:
probe a spreadsheet locally, inspect it against the backend for a preview,
then commit the import with a chosen sheet selection.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newProbeCmd(),
		newInspectCmd(),
		newUploadCmd(),
		newWhoamiCmd(),
	)
	return cmd
}
