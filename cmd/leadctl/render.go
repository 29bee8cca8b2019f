package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"lead-console/internal/domains/upload/model"
	"lead-console/internal/domains/upload/service"
	"lead-console/internal/spreadsheet"
)

func printWorkbook(w io.Writer, path string, wb *spreadsheet.Workbook) {
	fmt.Fprintf(w, "%s (%s)\n", path, wb.FileType)
	for _, sheet := range wb.Sheets {
		name := sheet.Name
		if name == "" {
			name = "(csv)"
		}
		fmt.Fprintf(w, "  %s: %d rows\n", name, len(sheet.Records))
		printLeadRows(w, sheet.LeadRows(spreadsheet.PreviewRowLimit))
	}
}

func printInspection(w io.Writer, snap service.Session) {
	info := snap.Info
	if info == nil {
		return
	}
	fmt.Fprintf(w, "%s (%s, %d bytes), token expires in %s\n",
		info.OriginalName, info.FileType, info.Size,
		(time.Duration(info.ExpiresInMs) * time.Millisecond).Round(time.Second))

	if info.FileType == model.FileTypeExcel {
		fmt.Fprintf(w, "Sheets: %s (selected: %s)\n",
			strings.Join(info.SheetNames, ", "), strings.Join(snap.Selected, ", "))
	}

	if !info.PreviewAvailable {
		fmt.Fprintf(w, "Preview unavailable: %s\n", info.PreviewDisabledReason)
		return
	}
	for sheetName, rows := range snap.Previews {
		if sheetName != "" {
			fmt.Fprintf(w, "Preview of %s:\n", sheetName)
		} else {
			fmt.Fprintln(w, "Preview:")
		}
		printLeadRows(w, rows)
	}
}

func printLeadRows(w io.Writer, rows []model.LeadRow) {
	if len(rows) == 0 {
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "    NAME\tPHONE\tMANDAL\tSTATE")
	for _, row := range rows {
		fmt.Fprintf(tw, "    %s\t%s\t%s\t%s\n", row.Name, row.Phone, row.Mandal, row.State)
	}
	tw.Flush()
}

// renderProgress repaints the synthetic percentage until the commit settles.
func renderProgress(w io.Writer, p service.ProgressSource, done <-chan struct{}) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			fmt.Fprintf(w, "\rUploading... %3d%%\n", 100)
			return
		case <-ticker.C:
			fmt.Fprintf(w, "\rUploading... %3d%%", p.Value())
		}
	}
}

func printResult(w io.Writer, result *model.UploadResult) {
	if result == nil {
		return
	}
	fmt.Fprintf(w, "Total: %d  Success: %d  Errors: %d\n", result.Total, result.Success, result.Errors)
	if result.DurationMs > 0 {
		fmt.Fprintf(w, "Took %dms\n", result.DurationMs)
	}
	if len(result.SheetsProcessed) > 0 {
		fmt.Fprintf(w, "Sheets processed: %s\n", strings.Join(result.SheetsProcessed, ", "))
	}
	if len(result.ErrorDetails) > 0 {
		fmt.Fprintln(w, "Row errors:")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "    SHEET\tROW\tERROR")
		details := result.ErrorDetails
		if len(details) > model.MaxErrorDetails {
			details = details[:model.MaxErrorDetails]
		}
		for _, detail := range details {
			fmt.Fprintf(tw, "    %s\t%d\t%s\n", detail.Sheet, detail.Row, detail.Error)
		}
		tw.Flush()
	}
}
