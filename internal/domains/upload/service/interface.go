package service

import (
	"context"

	"lead-console/internal/api"
	"lead-console/internal/domains/upload/model"
)

// UploadAPI is the slice of the backend client the orchestrator needs.
// *api.Client satisfies it; tests substitute fakes.
type UploadAPI interface {
	Inspect(ctx context.Context, filePath string) (*model.InspectionResult, error)
	Commit(ctx context.Context, req api.CommitRequest) (*model.UploadResult, error)
}
