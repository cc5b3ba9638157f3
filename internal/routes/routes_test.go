package routes

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"dayjob-record/internal/handlers"
	"dayjob-record/internal/options"
	"dayjob-record/internal/realtime"
	"dayjob-record/internal/store"
	"dayjob-record/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, requireAuth bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	h := handlers.New(
		store.New(db, store.Options{}),
		realtime.NewHub(),
		options.Load(filepath.Join(t.TempDir(), "options.json")),
		handlers.Config{},
	)
	return SetupRoutes(h, requireAuth)
}

func TestHealth(t *testing.T) {
	r := newRouter(t, false)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutes(t *testing.T) {
	open := newRouter(t, false)
	w := httptest.NewRecorder()
	open.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))
	require.Equal(t, http.StatusOK, w.Code)

	locked := newRouter(t, true)
	w = httptest.NewRecorder()
	locked.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPreflight(t *testing.T) {
	r := newRouter(t, true)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/tasks", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
