package service

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"lead-console/internal/api"
	"lead-console/internal/domains/upload/model"
)

// Service orchestrates the two-phase bulk upload: inspect a chosen file for a
// token + preview, let the user trim the sheet selection, then commit. All
// state it holds is one ephemeral client-side session.
type Service struct {
	client   UploadAPI
	progress *SyntheticProgress

	mu         sync.Mutex
	generation uint64
	state      model.State
	filePath   string
	token      string
	fileType   model.FileType
	sheetNames []string
	selection  *model.SheetSelection
	info       *model.InspectionResult
	result     *model.UploadResult
	message    string
}

// ServiceOption customizes a Service.
type ServiceOption func(*Service)

// WithProgress injects a progress estimator (tests shorten its timings).
func WithProgress(p *SyntheticProgress) ServiceOption {
	return func(s *Service) { s.progress = p }
}

// NewService creates an idle upload orchestrator.
func NewService(client UploadAPI, opts ...ServiceOption) *Service {
	s := &Service{
		client:   client,
		progress: NewSyntheticProgress(),
		state:    model.StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Progress exposes the commit progress percentage for rendering.
func (s *Service) Progress() ProgressSource {
	return s.progress
}

// Inspect submits filePath for server-side inspection. Choosing a file
// supersedes any previous session, including one whose inspect call is still
// in flight: the old call is not cancelled, its late response is discarded.
//
// On failure the whole session is cleared back to empty - the file must be
// reselected, which prevents retries against a dead inspection.
func (s *Service) Inspect(ctx context.Context, filePath string) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.resetLocked()
	s.filePath = filePath
	s.state = model.StateAnalyzing
	s.mu.Unlock()

	log.Info().
		Str("file_name", filepath.Base(filePath)).
		Msg("Inspecting file for bulk upload")

	info, err := s.client.Inspect(ctx, filePath)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// A newer file selection owns the session now.
		log.Debug().Str("file_name", filepath.Base(filePath)).Msg("Discarding stale inspection response")
		return nil
	}

	if err != nil {
		msg := userMessage(err)
		s.resetLocked()
		s.state = model.StateFailed
		s.message = msg
		log.Error().Err(err).Msg("File inspection failed")
		return err
	}

	s.token = info.UploadToken
	s.fileType = info.FileType
	s.sheetNames = append([]string(nil), info.SheetNames...)
	s.selection = model.NewSheetSelection(info.SheetNames)
	s.info = info
	s.state = model.StateReady
	s.message = ""

	log.Info().
		Str("file_type", string(info.FileType)).
		Int("sheets", len(info.SheetNames)).
		Bool("preview_available", info.PreviewAvailable).
		Msg("File inspected")
	return nil
}

// Commit performs the import using the session's token and sheet selection.
// Preconditions are checked before any network call; each violation maps to a
// distinct sentinel error and leaves the session untouched. Unlike inspection
// failure, a commit failure keeps the session intact so it can be retried
// while the token is still alive.
func (s *Service) Commit(ctx context.Context, source string) error {
	s.mu.Lock()
	if s.filePath == "" {
		s.mu.Unlock()
		return model.ErrNoFile
	}
	if s.state == model.StateAnalyzing {
		s.mu.Unlock()
		return model.ErrAnalyzing
	}
	if s.fileType == model.FileTypeExcel && (s.selection == nil || s.selection.Len() == 0) {
		s.mu.Unlock()
		return model.ErrNoSheetsSelected
	}

	gen := s.generation
	req := api.CommitRequest{
		UploadToken: s.token,
		FilePath:    s.filePath,
		Source:      source,
	}
	if s.fileType == model.FileTypeExcel {
		req.SelectedSheets = s.selection.Names()
	}
	s.state = model.StateCommitting
	s.mu.Unlock()

	log.Info().
		Str("file_name", filepath.Base(req.FilePath)).
		Strs("selected_sheets", req.SelectedSheets).
		Msg("Committing bulk upload")

	s.progress.Start()
	result, err := s.client.Commit(ctx, req)
	s.progress.Finish()

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return nil
	}

	if err != nil {
		// Session (file, token, selection) is deliberately preserved.
		s.state = model.StateFailed
		s.message = userMessage(err)
		log.Error().Err(err).Msg("Bulk upload commit failed")
		return err
	}

	s.result = result
	s.state = model.StateDone
	s.message = ""
	log.Info().
		Int("total", result.Total).
		Int("success", result.Success).
		Int("errors", result.Errors).
		Msg("Bulk upload committed")
	return nil
}

// ToggleSheet flips one sheet's membership in the commit selection.
func (s *Service) ToggleSheet(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection != nil {
		s.selection.Toggle(name)
	}
}

// SelectAllSheets restores the select-all default.
func (s *Service) SelectAllSheets() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection != nil {
		s.selection.SelectAll(s.sheetNames)
	}
}

// ClearAllSheets empties the selection. The non-empty invariant is enforced
// at commit time, not here.
func (s *Service) ClearAllSheets() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection != nil {
		s.selection.ClearAll()
	}
}

// Reset discards the session entirely and stops any progress display.
// In-flight responses for the discarded session will be ignored.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.resetLocked()
}

// Snapshot returns a copy of the current session for rendering and tests.
func (s *Service) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Session{
		State:      s.state,
		FilePath:   s.filePath,
		Token:      s.token,
		FileType:   s.fileType,
		SheetNames: append([]string(nil), s.sheetNames...),
		Info:       s.info,
		Result:     s.result,
		Message:    s.message,
	}
	if s.filePath != "" {
		snap.FileName = filepath.Base(s.filePath)
	}
	if s.selection != nil {
		snap.Selected = s.selection.Names()
	}
	if s.info != nil {
		snap.Previews = s.info.Previews
	}
	return snap
}

// resetLocked zeroes every session field. Caller holds s.mu.
func (s *Service) resetLocked() {
	s.progress.Stop()
	s.state = model.StateIdle
	s.filePath = ""
	s.token = ""
	s.fileType = ""
	s.sheetNames = nil
	s.selection = nil
	s.info = nil
	s.result = nil
	s.message = ""
}

// userMessage picks what the user sees: server-provided message, then the
// error's own text, then the hardcoded fallback.
func userMessage(err error) string {
	if msg := api.ServerMessage(err); msg != "" {
		return msg
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return model.FallbackMessage
}
