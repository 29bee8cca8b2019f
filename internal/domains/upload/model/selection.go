package model

import "sort"

// SheetSelection tracks which worksheets of an Excel workbook are included in
// the commit. CSV files never touch this: they have one implicit sheet.
type SheetSelection struct {
	members map[string]struct{}
}

// NewSheetSelection returns a selection containing every given sheet, the
// select-all default applied right after inspection.
func NewSheetSelection(sheetNames []string) *SheetSelection {
	s := &SheetSelection{members: make(map[string]struct{}, len(sheetNames))}
	for _, name := range sheetNames {
		s.members[name] = struct{}{}
	}
	return s
}

// Toggle flips membership of one sheet.
func (s *SheetSelection) Toggle(sheetName string) {
	if _, ok := s.members[sheetName]; ok {
		delete(s.members, sheetName)
		return
	}
	s.members[sheetName] = struct{}{}
}

// SelectAll resets the selection to the full sheet list.
func (s *SheetSelection) SelectAll(sheetNames []string) {
	s.members = make(map[string]struct{}, len(sheetNames))
	for _, name := range sheetNames {
		s.members[name] = struct{}{}
	}
}

// ClearAll empties the selection.
func (s *SheetSelection) ClearAll() {
	s.members = make(map[string]struct{})
}

// Has reports whether a sheet is selected.
func (s *SheetSelection) Has(sheetName string) bool {
	_, ok := s.members[sheetName]
	return ok
}

// Len returns the number of selected sheets.
func (s *SheetSelection) Len() int {
	return len(s.members)
}

// Names returns the selected sheet names sorted, so request bodies and logs
// are deterministic.
func (s *SheetSelection) Names() []string {
	names := make([]string, 0, len(s.members))
	for name := range s.members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
