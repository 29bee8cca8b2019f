package devserver_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"lead-console/internal/api"
	"lead-console/internal/config"
	"lead-console/internal/devserver"
	"lead-console/internal/domains/upload/model"
	"lead-console/internal/domains/upload/service"
)

// The full client stack against the stub backend: inspect, trim the
// selection, commit, read the result.
func TestUploadFlowEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(devserver.NewRouter(config.DevServerConfig{
		Token:           "hunter2",
		TokenTTLSeconds: 600,
		PreviewRows:     5,
		PreviewMaxBytes: 5 * 1024 * 1024,
	}))
	defer srv.Close()

	filePath := writeWorkbook(t)
	client := api.NewClient(srv.URL+"/api/v1", "hunter2")
	svc := service.NewService(client, service.WithProgress(
		service.NewSyntheticProgress(service.WithTick(time.Millisecond), service.WithHold(time.Millisecond)),
	))

	require.NoError(t, svc.Inspect(context.Background(), filePath))
	snap := svc.Snapshot()
	assert.Equal(t, model.StateReady, snap.State)
	assert.Equal(t, []string{"Jan", "Feb", "Mar"}, snap.SheetNames)
	assert.ElementsMatch(t, []string{"Jan", "Feb", "Mar"}, snap.Selected)
	require.NotNil(t, snap.Info)
	assert.True(t, snap.Info.PreviewAvailable)
	assert.Equal(t, "Ravi", snap.Previews["Jan"][0].Name)

	svc.ClearAllSheets()
	svc.ToggleSheet("Feb")

	require.NoError(t, svc.Commit(context.Background(), "february-drive"))

	snap = svc.Snapshot()
	assert.Equal(t, model.StateDone, snap.State)
	require.NotNil(t, snap.Result)
	assert.Equal(t, 2, snap.Result.Total)
	assert.Equal(t, 1, snap.Result.Success)
	assert.Equal(t, 1, snap.Result.Errors)
	assert.Equal(t, []string{"Feb"}, snap.Result.SheetsProcessed)
	require.Len(t, snap.Result.ErrorDetails, 1)
	assert.Equal(t, "Feb", snap.Result.ErrorDetails[0].Sheet)
	// Session survives a finished upload so the user can review in context.
	assert.True(t, snap.HasFile())
	assert.NotEmpty(t, snap.Token)
}

func writeWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	sheets := map[string][][]interface{}{
		"Jan": {
			{"Name", "Phone"},
			{"Ravi", "9876543210"},
		},
		"Feb": {
			{"Name", "Phone"},
			{"Arun", "9000000001"},
			{"", "9000000002"},
		},
		"Mar": {
			{"Name", "Phone"},
			{"Sita", "9123456789"},
		},
	}
	for i, name := range []string{"Jan", "Feb", "Mar"} {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for rowIdx, row := range sheets[name] {
			require.NoError(t, f.SetSheetRow(name, fmt.Sprintf("A%d", rowIdx+1), &row))
		}
	}
	path := filepath.Join(t.TempDir(), "leads.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}
