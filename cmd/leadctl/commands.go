package main

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"lead-console/internal/domains/upload/model"
	"lead-console/internal/spreadsheet"
)

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe <file>",
		Short: "List sheets and preview rows locally, without the backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := spreadsheet.Open(args[0])
			if err != nil {
				return err
			}
			printWorkbook(cmd.OutOrStdout(), args[0], wb)
			return nil
		},
	}
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Submit a file for server-side inspection and show the preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.svc.Inspect(cmd.Context(), args[0]); err != nil {
				return errors.New(a.svc.Snapshot().Message)
			}
			printInspection(cmd.OutOrStdout(), a.svc.Snapshot())
			return nil
		},
	}
}

func newUploadCmd() *cobra.Command {
	var sheets []string
	var source string
	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Inspect, select sheets and commit a bulk lead import",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			opts := uploadOptions{FilePath: args[0], Source: source}
			if err := opts.Validate(); err != nil {
				return err
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if err := a.svc.Inspect(ctx, opts.FilePath); err != nil {
				return errors.New(a.svc.Snapshot().Message)
			}
			snap := a.svc.Snapshot()
			printInspection(out, snap)

			if len(sheets) > 0 {
				if snap.FileType != model.FileTypeExcel {
					return errors.New("--sheets applies to Excel uploads only")
				}
				known := make(map[string]struct{}, len(snap.SheetNames))
				for _, name := range snap.SheetNames {
					known[name] = struct{}{}
				}
				a.svc.ClearAllSheets()
				for _, name := range sheets {
					if _, ok := known[name]; !ok {
						return fmt.Errorf("unknown sheet %q (workbook has %v)", name, snap.SheetNames)
					}
					a.svc.ToggleSheet(name)
				}
			}

			done := make(chan struct{})
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				renderProgress(out, a.svc.Progress(), done)
			}()

			commitErr := a.svc.Commit(ctx, opts.Source)
			close(done)
			wg.Wait()

			snap = a.svc.Snapshot()
			if commitErr != nil {
				return errors.New(snap.Message)
			}
			printResult(out, snap.Result)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&sheets, "sheets", nil, "Sheets to include (default: all sheets)")
	cmd.Flags().StringVar(&source, "source", "", "Source label recorded on each imported lead")
	return cmd
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the configured operator and backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if user := a.sess.CurrentUser(); user != nil {
				fmt.Fprintf(out, "Signed in as %s (%s)\n", user.Name, user.Role)
			} else {
				fmt.Fprintln(out, "No operator configured (set LEAD_API_USER)")
			}
			fmt.Fprintf(out, "Backend: %s\n", a.cfg.API.BaseURL)
			if !a.sess.Authenticated() {
				fmt.Fprintln(out, "Warning: no API token configured (set LEAD_API_TOKEN)")
			}
			return nil
		},
	}
}
