package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lead-console/internal/domains/upload/model"
)

func writeTempCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leads.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,phone\nRavi,9876543210\n"), 0o644))
	return path
}

func TestInspectSendsFileWithBearerToken(t *testing.T) {
	var gotAuth string
	var gotFileName string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/leads/bulk-upload/inspect", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFileName = header.Filename

		json.NewEncoder(w).Encode(model.InspectionResult{
			UploadToken:      "tok-123",
			OriginalName:     header.Filename,
			FileType:         model.FileTypeCSV,
			SheetNames:       []string{},
			PreviewAvailable: true,
			ExpiresInMs:      600000,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-token")
	result, err := client.Inspect(context.Background(), writeTempCSV(t))
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "leads.csv", gotFileName)
	assert.Equal(t, "tok-123", result.UploadToken)
	assert.Equal(t, model.FileTypeCSV, result.FileType)
}

func TestCommitPrefersTokenOverFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "tok-123", r.FormValue("uploadToken"))
		assert.Equal(t, "walk-in", r.FormValue("source"))
		assert.Equal(t, `["Feb"]`, r.FormValue("selectedSheets"))
		_, _, err := r.FormFile("file")
		assert.Error(t, err, "file must not be sent when a token exists")

		json.NewEncoder(w).Encode(model.UploadResult{Total: 5, Success: 5})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	result, err := client.Commit(context.Background(), CommitRequest{
		UploadToken:    "tok-123",
		FilePath:       writeTempCSV(t),
		Source:         "walk-in",
		SelectedSheets: []string{"Feb"},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Success)
}

func TestCommitFallsBackToRawFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Empty(t, r.FormValue("uploadToken"))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "leads.csv", header.Filename)
		// Blank source falls back to the default label.
		assert.Equal(t, model.DefaultSource, r.FormValue("source"))
		// CSV commit omits selectedSheets entirely.
		assert.Empty(t, r.PostForm["selectedSheets"])

		json.NewEncoder(w).Encode(model.UploadResult{Total: 1, Success: 1})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.Commit(context.Background(), CommitRequest{FilePath: writeTempCSV(t)})
	require.NoError(t, err)
}

func TestNon2xxDecodesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		json.NewEncoder(w).Encode(map[string]string{"message": "File too large"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.Inspect(context.Background(), writeTempCSV(t))
	require.Error(t, err)
	assert.Equal(t, "File too large", ServerMessage(err))
	assert.EqualError(t, err, "File too large")
}

func TestNon2xxWithoutJSONBodyStillFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.Inspect(context.Background(), writeTempCSV(t))
	require.Error(t, err)
	assert.Empty(t, ServerMessage(err))
	assert.EqualError(t, err, "lead API returned 502 Bad Gateway")
}

func TestServerMessageOnPlainError(t *testing.T) {
	assert.Empty(t, ServerMessage(context.DeadlineExceeded))
}
