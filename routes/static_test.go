package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestStaticRoutesFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.html"), "<html>panel</html>")
	writeFile(t, filepath.Join(dir, "app.js"), "console.log(1)")

	router := gin.New()
	if !SetupStaticRoutes(router, dir) {
		t.Fatal("SetupStaticRoutes returned false for existing dir")
	}

	cases := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{"/app.js", http.StatusOK, "console.log(1)"},
		{"/", http.StatusOK, "<html>panel</html>"},
		{"/tasks/42/edit", http.StatusOK, "<html>panel</html>"},
		{"/api/missing", http.StatusNotFound, ""},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if w.Code != tc.wantCode {
			t.Errorf("GET %s: status = %d, want %d", tc.path, w.Code, tc.wantCode)
		}
		if tc.wantBody != "" && !strings.Contains(w.Body.String(), tc.wantBody) {
			t.Errorf("GET %s: body = %q", tc.path, w.Body.String())
		}
	}
}

func TestStaticRoutesMissingDir(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if SetupStaticRoutes(router, filepath.Join(t.TempDir(), "nope")) {
		t.Fatal("SetupStaticRoutes returned true for missing dir")
	}
}
