package spreadsheet

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"lead-console/internal/domains/upload/model"
)

// namedSheet keeps fixture sheets ordered, since workbook order matters.
type namedSheet struct {
	name string
	rows [][]interface{}
}

func buildXLSX(t *testing.T, sheets []namedSheet) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	for i, sheet := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", sheet.name))
		} else {
			_, err := f.NewSheet(sheet.name)
			require.NoError(t, err)
		}
		for rowIdx, row := range sheet.rows {
			cell := fmt.Sprintf("A%d", rowIdx+1)
			require.NoError(t, f.SetSheetRow(sheet.name, cell, &row))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestOpenReaderExcelMultiSheet(t *testing.T) {
	buf := buildXLSX(t, []namedSheet{
		{name: "Jan", rows: [][]interface{}{
			{"Name", "Phone", "Mandal", "State"},
			{"Ravi", "9876543210", "Kuppam", "AP"},
			{"Sita", "9123456789", "Palamaner", "AP"},
		}},
		{name: "Feb", rows: [][]interface{}{
			{"Name", "Phone"},
			{"Arun", "9000000001"},
		}},
	})

	wb, err := OpenReader(buf, "leads.xlsx")
	require.NoError(t, err)

	assert.Equal(t, model.FileTypeExcel, wb.FileType)
	assert.Equal(t, []string{"Jan", "Feb"}, wb.SheetNames())
	require.Len(t, wb.Sheets, 2)
	assert.Len(t, wb.Sheets[0].Records, 2)
	assert.Equal(t, []string{"Name", "Phone", "Mandal", "State"}, wb.Sheets[0].Headers)
}

func TestLeadRowHeaderMapping(t *testing.T) {
	buf := buildXLSX(t, []namedSheet{
		{name: "Leads", rows: [][]interface{}{
			{"Name", "Mobile", "Mandal", "State", "Course"},
			{"Ravi", "9876543210", "Kuppam", "AP", "BTech"},
		}},
	})

	wb, err := OpenReader(buf, "leads.xlsx")
	require.NoError(t, err)

	rows := wb.Sheets[0].LeadRows(0)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ravi", rows[0].Name)
	assert.Equal(t, "9876543210", rows[0].Phone)
	assert.Equal(t, "Kuppam", rows[0].Mandal)
	assert.Equal(t, "AP", rows[0].State)
	assert.Equal(t, map[string]string{"Course": "BTech"}, rows[0].Extra)
}

func TestPreviewsRespectLimit(t *testing.T) {
	rows := [][]interface{}{{"Name", "Phone"}}
	for i := 0; i < 20; i++ {
		rows = append(rows, []interface{}{fmt.Sprintf("Lead %d", i), "9876543210"})
	}
	buf := buildXLSX(t, []namedSheet{{name: "Bulk", rows: rows}})

	wb, err := OpenReader(buf, "leads.xlsx")
	require.NoError(t, err)

	previews := wb.Previews(PreviewRowLimit)
	require.Contains(t, previews, "Bulk")
	assert.Len(t, previews["Bulk"], PreviewRowLimit)
	// limit <= 0 means everything.
	assert.Len(t, wb.Sheets[0].LeadRows(0), 20)
}

func TestOpenReaderCSVIsSingleImplicitSheet(t *testing.T) {
	csv := "name,phone,mandal,state\nRavi,9876543210,Kuppam,AP\nSita,9123456789,Palamaner,AP\n"

	wb, err := OpenReader(strings.NewReader(csv), "leads.csv")
	require.NoError(t, err)

	assert.Equal(t, model.FileTypeCSV, wb.FileType)
	assert.Empty(t, wb.SheetNames(), "the implicit CSV sheet has no name")
	require.Len(t, wb.Sheets, 1)
	assert.Len(t, wb.Sheets[0].Records, 2)
	assert.Equal(t, "Ravi", wb.Sheets[0].LeadRows(0)[0].Name)
}

func TestCSVHandlesRaggedRows(t *testing.T) {
	csv := "name,phone,mandal\nRavi,9876543210\nSita,9123456789,Palamaner,extra\n"

	wb, err := OpenReader(strings.NewReader(csv), "leads.csv")
	require.NoError(t, err)

	for _, record := range wb.Sheets[0].Records {
		assert.Len(t, record, 3, "records are padded or trimmed to header width")
	}
}

func TestOpenReaderRejectsUnknownExtension(t *testing.T) {
	_, err := OpenReader(strings.NewReader("x"), "leads.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestOpenReaderRejectsLegacyXLS(t *testing.T) {
	_, err := OpenReader(strings.NewReader("x"), "leads.xls")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".xls")
}
