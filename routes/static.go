package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"ads-admin-backend/internal/logger"
)

// SetupStaticRoutes serves the prebuilt admin panel and falls back to its
// entry page for unmatched GET routes, so client-side routing survives hard
// reloads. Returns false when the build directory is missing.
func SetupStaticRoutes(router *gin.Engine, dir string) bool {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logger.Warn("static directory not found, SPA hosting disabled", "dir", dir)
		return false
	}
	index := filepath.Join(dir, "index.html")

	router.NoRoute(func(c *gin.Context) {
		p := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || strings.HasPrefix(p, "/api/") || p == "/ws" {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		file := filepath.Join(dir, filepath.Clean("/"+p))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(index)
	})

	logger.Info("serving admin panel", "dir", dir)
	return true
}
