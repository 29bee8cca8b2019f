package service

import "lead-console/internal/domains/upload/model"

// Session is a read-only snapshot of the client-local upload session. It
// lives only in memory: a page reload, a reset, or a new file selection
// discards it entirely.
type Session struct {
	State      model.State
	FilePath   string
	FileName   string
	Token      string
	FileType   model.FileType
	SheetNames []string
	Selected   []string
	Previews   map[string][]model.LeadRow
	Info       *model.InspectionResult
	Result     *model.UploadResult
	Message    string
}

// HasFile reports whether a file is currently chosen.
func (s Session) HasFile() bool {
	return s.FilePath != ""
}
