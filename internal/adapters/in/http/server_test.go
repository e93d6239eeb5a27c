package http_test

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	adapterhttp "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, archiveDir string) *echo.Echo {
	t.Helper()
	e := echo.New()
	server := adapterhttp.NewServer(queries.NewGetArchivedRunsQueryHandler(archiveDir))
	server.RegisterRoutes(e)
	return e
}

func Test_Server_GetHealth(t *testing.T) {
	// Arrange
	e := newTestServer(t, t.TempDir())
	request := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	recorder := httptest.NewRecorder()

	// Act
	e.ServeHTTP(recorder, request)

	// Assert
	assert.Equal(t, nethttp.StatusOK, recorder.Code)
	assert.Equal(t, "Healthy", recorder.Body.String())
}

func Test_Server_GetRuns_EmptyArchive(t *testing.T) {
	// Arrange
	e := newTestServer(t, t.TempDir())
	request := httptest.NewRequest(nethttp.MethodGet, "/api/v1/runs", nil)
	recorder := httptest.NewRecorder()

	// Act
	e.ServeHTTP(recorder, request)

	// Assert
	assert.Equal(t, nethttp.StatusOK, recorder.Code)
	assert.JSONEq(t, "[]", recorder.Body.String())
}

func Test_Server_GetRuns_ReturnsArchivedRuns(t *testing.T) {
	// Arrange
	archiveDir := t.TempDir()
	runDir := filepath.Join(archiveDir, "1503900000")
	require.NoError(t, os.MkdirAll(filepath.Join(runDir, "label_archive"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(runDir, "TRACKING-batch.csv"), []byte("Order,Tracking Number\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(runDir, "label_archive", "SO-100.pdf"), []byte("%PDF"), 0o644))

	e := newTestServer(t, archiveDir)
	request := httptest.NewRequest(nethttp.MethodGet, "/api/v1/runs", nil)
	recorder := httptest.NewRecorder()

	// Act
	e.ServeHTTP(recorder, request)

	// Assert
	require.Equal(t, nethttp.StatusOK, recorder.Code)

	var runs []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "1503900000", runs[0]["run_id"])
	assert.Equal(t, float64(1), runs[0]["labels"])
	assert.Equal(t, float64(1), runs[0]["artifacts"])
}
