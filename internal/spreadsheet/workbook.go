package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"lead-console/internal/domains/upload/model"
)

// PreviewRowLimit caps how many data rows a preview carries per sheet.
const PreviewRowLimit = 5

// Sheet is one parsed worksheet: a header row plus data records. A CSV file
// yields exactly one implicit sheet with an empty name.
type Sheet struct {
	Name    string
	Headers []string
	Records [][]string
}

// Workbook is a fully parsed spreadsheet, either an Excel workbook or a CSV
// file.
type Workbook struct {
	FileType model.FileType
	Sheets   []Sheet
}

// Open parses the file at path. Supported extensions: .xlsx, .csv. Legacy
// .xls workbooks must go through the backend, which owns that conversion.
func Open(path string) (*Workbook, error) {
	src, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()
	return OpenReader(src, filepath.Base(path))
}

// OpenReader parses spreadsheet content from r, dispatching on the file name
// extension.
func OpenReader(r io.Reader, name string) (*Workbook, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return readExcel(r)
	case ".xls":
		return nil, fmt.Errorf("legacy .xls workbooks are not supported, convert to .xlsx")
	case ".csv":
		return readCSV(r)
	default:
		return nil, fmt.Errorf("unsupported file type %q (expected .xlsx, .xls or .csv)", filepath.Ext(name))
	}
}

// SheetNames lists worksheet names in workbook order. Empty for CSV: its
// single implicit sheet has no name.
func (w *Workbook) SheetNames() []string {
	var names []string
	for _, sheet := range w.Sheets {
		if sheet.Name != "" {
			names = append(names, sheet.Name)
		}
	}
	return names
}

// Previews returns up to limit lead rows per sheet, keyed by sheet name (the
// empty key for CSV's implicit sheet).
func (w *Workbook) Previews(limit int) map[string][]model.LeadRow {
	previews := make(map[string][]model.LeadRow, len(w.Sheets))
	for _, sheet := range w.Sheets {
		previews[sheet.Name] = sheet.LeadRows(limit)
	}
	return previews
}

// LeadRows projects up to limit records into the lead preview shape.
// limit <= 0 means all records.
func (s *Sheet) LeadRows(limit int) []model.LeadRow {
	n := len(s.Records)
	if limit > 0 && n > limit {
		n = limit
	}
	rows := make([]model.LeadRow, 0, n)
	for _, record := range s.Records[:n] {
		rows = append(rows, leadRowFromRecord(s.Headers, record))
	}
	return rows
}

func readExcel(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Excel workbook: %w", err)
	}
	defer f.Close()

	wb := &Workbook{FileType: model.FileTypeExcel}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		sheet := Sheet{Name: name}
		if len(rows) > 0 {
			sheet.Headers = normalizeRecord(rows[0], len(rows[0]))
			for _, row := range rows[1:] {
				sheet.Records = append(sheet.Records, normalizeRecord(row, len(sheet.Headers)))
			}
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}
	return wb, nil
}

func readCSV(r io.Reader) (*Workbook, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	sheet := Sheet{}
	if len(records) > 0 {
		sheet.Headers = normalizeRecord(records[0], len(records[0]))
		for _, record := range records[1:] {
			sheet.Records = append(sheet.Records, normalizeRecord(record, len(sheet.Headers)))
		}
	}
	return &Workbook{FileType: model.FileTypeCSV, Sheets: []Sheet{sheet}}, nil
}

// normalizeRecord trims cells and pads short rows so every record lines up
// with the header row. Excel drops trailing empty cells per row.
func normalizeRecord(record []string, width int) []string {
	out := make([]string, width)
	for i := 0; i < width && i < len(record); i++ {
		out[i] = strings.TrimSpace(record[i])
	}
	return out
}

func leadRowFromRecord(headers, record []string) model.LeadRow {
	var row model.LeadRow
	for i, header := range headers {
		if i >= len(record) || record[i] == "" {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(header)) {
		case "name", "lead name", "student name":
			row.Name = record[i]
		case "phone", "mobile", "phone number":
			row.Phone = record[i]
		case "mandal":
			row.Mandal = record[i]
		case "state":
			row.State = record[i]
		default:
			if row.Extra == nil {
				row.Extra = make(map[string]string)
			}
			row.Extra[header] = record[i]
		}
	}
	return row
}
