package model

// ========================================
// BULK UPLOAD WIRE MODEL
// ========================================

// FileType distinguishes the two spreadsheet families the backend accepts.
type FileType string

const (
	FileTypeExcel FileType = "excel"
	FileTypeCSV   FileType = "csv"
)

// DefaultSource is used when the caller does not name where leads came from.
const DefaultSource = "bulk-upload"

// MaxErrorDetails is the backend contract cap on per-row error entries.
const MaxErrorDetails = 100

// LeadRow is the preview projection of one imported row. It is enough for a
// human to verify the file was parsed sanely; it is not a validated lead.
type LeadRow struct {
	Name   string            `json:"name"`
	Phone  string            `json:"phone"`
	Mandal string            `json:"mandal,omitempty"`
	State  string            `json:"state,omitempty"`
	Extra  map[string]string `json:"extra,omitempty"`
}

// InspectionResult is the backend's answer to the inspect phase. It is
// immutable after receipt; a new file selection supersedes it wholesale.
type InspectionResult struct {
	UploadToken           string               `json:"uploadToken"`
	OriginalName          string               `json:"originalName"`
	Size                  int64                `json:"size"`
	FileType              FileType             `json:"fileType"`
	SheetNames            []string             `json:"sheetNames"`
	Previews              map[string][]LeadRow `json:"previews"`
	PreviewAvailable      bool                 `json:"previewAvailable"`
	PreviewDisabledReason string               `json:"previewDisabledReason,omitempty"`
	ExpiresInMs           int64                `json:"expiresInMs"`
}

// RowError is one failed row from a commit, with the sheet kept for
// traceability in multi-sheet uploads.
type RowError struct {
	Sheet string `json:"sheet,omitempty"`
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// UploadResult is the backend's answer to the commit phase. ErrorDetails
// carries at most MaxErrorDetails entries by contract.
type UploadResult struct {
	BatchID         string     `json:"batchId,omitempty"`
	Total           int        `json:"total"`
	Success         int        `json:"success"`
	Errors          int        `json:"errors"`
	DurationMs      int64      `json:"durationMs,omitempty"`
	SheetsProcessed []string   `json:"sheetsProcessed,omitempty"`
	ErrorDetails    []RowError `json:"errorDetails,omitempty"`
}
