package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"ads-admin-backend/internal/config"
	"ads-admin-backend/internal/storage"
)

// Validation paths return before any store access, so a store without a
// database behind it is enough here.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cfg := &config.Config{GinMode: "debug"}
	SetupTaskRoutes(router, cfg, storage.NewTaskStore(nil))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return resp.Error
}

func TestUpdateTaskNonNumericID(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPut, "/api/tasks/abc", `{"sent":true}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if msg := errorMessage(t, w); msg != errBadTaskID {
		t.Fatalf("error = %q, want %q", msg, errBadTaskID)
	}
}

func TestUpdateTaskOnlyUnknownKeys(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPut, "/api/tasks/5", `{"frobnicate":1,"color":"red"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if msg := errorMessage(t, w); msg != errNoFields {
		t.Fatalf("error = %q, want %q", msg, errNoFields)
	}
}

func TestUpdateTaskEmptyBody(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPut, "/api/tasks/5", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUpdateTaskMalformedBody(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPut, "/api/tasks/5", `{"sent":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDeleteTaskNonNumericID(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodDelete, "/api/tasks/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCreateTaskMalformedBody(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/tasks", `{"chat_id"`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
