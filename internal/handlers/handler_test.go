package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"dayjob-record/internal/middleware"
	"dayjob-record/internal/options"
	"dayjob-record/internal/realtime"
	"dayjob-record/internal/store"
	"dayjob-record/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type eventRecorder struct {
	mu     sync.Mutex
	events []realtime.Event
}

func (r *eventRecorder) Send(message []byte) bool {
	var evt realtime.Event
	if err := json.Unmarshal(message, &evt); err != nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return true
}

func (r *eventRecorder) Close() {}

func (r *eventRecorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	events *eventRecorder
}

func newTestEnv(t *testing.T, cfg Config) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	hub := realtime.NewHub()
	events := &eventRecorder{}
	hub.Register("local", events)

	h := New(store.New(db, store.Options{}), hub, options.Load(filepath.Join(t.TempDir(), "options.json")), cfg)

	r := gin.New()
	r.POST("/api/login", h.Login)
	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(false))
	api.GET("/options", h.GetOptions)
	api.GET("/tasks", h.GetTasks)
	api.GET("/tasks/:id", h.GetTaskByID)
	api.POST("/tasks", h.CreateTask)
	api.PUT("/tasks/:id", h.UpdateTask)
	api.PATCH("/tasks/:id/visibility", h.UpdateTaskVisibility)
	api.DELETE("/tasks/:id", h.DeleteTask)
	api.GET("/tasks/:id/items", h.GetTaskItems)
	api.POST("/tasks/:id/items", h.CreateTaskItem)
	api.PUT("/items/:id", h.UpdateTaskItem)
	api.DELETE("/items/:id", h.DeleteTaskItem)
	api.POST("/reports", h.GenerateReport)
	api.GET("/stats", h.GetStats)

	return &testEnv{router: r, db: db, events: events}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
