package devserver

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lead-console/internal/config"
	"lead-console/internal/domains/upload/model"
	"lead-console/internal/shared/response"
	"lead-console/internal/spreadsheet"
)

// Handler implements the bulk-upload contract in memory. It exists so the
// console can be exercised end-to-end without the real backend; nothing it
// accepts survives a restart.
type Handler struct {
	cfg   config.DevServerConfig
	store *TokenStore
}

func NewHandler(cfg config.DevServerConfig) *Handler {
	return &Handler{
		cfg:   cfg,
		store: NewTokenStore(time.Duration(cfg.TokenTTLSeconds) * time.Second),
	}
}

// Inspect - POST /leads/bulk-upload/inspect
// Parses the uploaded spreadsheet, stages it under a fresh token and answers
// with sheet names plus previews.
func (h *Handler) Inspect(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required (multipart/form-data)")
		return
	}

	wb, err := h.parseUpload(fileHeader)
	if err != nil {
		log.Warn().Err(err).Str("file_name", fileHeader.Filename).Msg("Inspect rejected upload")
		response.BadRequest(c, err.Error())
		return
	}

	token := h.store.Put(&StagedUpload{
		Workbook:     wb,
		OriginalName: fileHeader.Filename,
		Size:         fileHeader.Size,
	})

	result := model.InspectionResult{
		UploadToken:      token,
		OriginalName:     fileHeader.Filename,
		Size:             fileHeader.Size,
		FileType:         wb.FileType,
		SheetNames:       make([]string, 0),
		Previews:         map[string][]model.LeadRow{},
		PreviewAvailable: fileHeader.Size <= h.cfg.PreviewMaxBytes,
		ExpiresInMs:      h.store.TTL().Milliseconds(),
	}
	result.SheetNames = append(result.SheetNames, wb.SheetNames()...)
	if result.PreviewAvailable {
		result.Previews = wb.Previews(h.cfg.PreviewRows)
	} else {
		result.PreviewDisabledReason = "file too large to preview"
	}

	log.Info().
		Str("file_name", fileHeader.Filename).
		Str("file_type", string(wb.FileType)).
		Int("sheets", len(result.SheetNames)).
		Msg("Staged upload for inspection")

	c.JSON(http.StatusOK, result)
}

// Commit - POST /leads/bulk-upload
// Resolves the upload token (or the raw file fallback), imports the selected
// sheets and answers with counts plus capped per-row errors.
func (h *Handler) Commit(c *gin.Context) {
	token := c.PostForm("uploadToken")

	var wb *spreadsheet.Workbook
	switch {
	case token != "":
		staged, ok := h.store.Get(token)
		if !ok {
			response.BadRequest(c, "upload token expired or unknown")
			return
		}
		wb = staged.Workbook
	default:
		fileHeader, err := c.FormFile("file")
		if err != nil {
			response.BadRequest(c, "uploadToken or file is required")
			return
		}
		wb, err = h.parseUpload(fileHeader)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	var selected []string
	if raw := c.PostForm("selectedSheets"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &selected); err != nil {
			response.BadRequest(c, "selectedSheets must be a JSON array of sheet names")
			return
		}
	}
	if wb.FileType == model.FileTypeExcel && selected != nil && len(selected) == 0 {
		response.BadRequest(c, "no sheets selected")
		return
	}

	source := c.PostForm("source")
	if source == "" {
		source = model.DefaultSource
	}

	start := time.Now()
	result := h.importWorkbook(wb, selected)
	result.BatchID = uuid.NewString()
	result.DurationMs = time.Since(start).Milliseconds()

	if token != "" {
		h.store.Delete(token)
	}

	log.Info().
		Str("batch_id", result.BatchID).
		Str("source", source).
		Int("total", result.Total).
		Int("success", result.Success).
		Int("errors", result.Errors).
		Msg("Bulk upload committed")

	c.JSON(http.StatusOK, result)
}

func (h *Handler) parseUpload(fileHeader *multipart.FileHeader) (*spreadsheet.Workbook, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return spreadsheet.OpenReader(src, fileHeader.Filename)
}

// importWorkbook walks every selected sheet, validating row by row the way
// the real importer would. Row numbers are 1-based spreadsheet rows, so the
// first data row under the header is row 2.
func (h *Handler) importWorkbook(wb *spreadsheet.Workbook, selected []string) *model.UploadResult {
	selectedSet := make(map[string]struct{}, len(selected))
	for _, name := range selected {
		selectedSet[name] = struct{}{}
	}

	result := &model.UploadResult{}
	for _, sheet := range wb.Sheets {
		if wb.FileType == model.FileTypeExcel && selected != nil {
			if _, ok := selectedSet[sheet.Name]; !ok {
				continue
			}
		}
		if wb.FileType == model.FileTypeExcel {
			result.SheetsProcessed = append(result.SheetsProcessed, sheet.Name)
		}

		for i, row := range sheet.LeadRows(0) {
			result.Total++
			if err := validateLead(row); err != nil {
				result.Errors++
				if len(result.ErrorDetails) < model.MaxErrorDetails {
					result.ErrorDetails = append(result.ErrorDetails, model.RowError{
						Sheet: sheet.Name,
						Row:   i + 2,
						Error: err.Error(),
					})
				}
				continue
			}
			result.Success++
		}
	}
	return result
}
