package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ads-admin-backend/internal/logger"
	"ads-admin-backend/internal/storage"
	"ads-admin-backend/middleware"
	"ads-admin-backend/utils"
)

const errListAdvertisers = "Ошибка при получении списка рекламодателей"

// SetupAdvertiserRoutes exposes the source for the panel's advertiser
// filter: only advertisers with pending work.
func SetupAdvertiserRoutes(router *gin.Engine, store *storage.TaskStore) {
	router.GET("/api/advertisers", handleListAdvertisers(store))
}

func handleListAdvertisers(store *storage.TaskStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		names, err := store.PendingAdvertisers(c.Request.Context())
		if err != nil {
			logger.Error("failed to list advertisers", "error", err, "request_id", middleware.GetRequestID(c))
			utils.RespondWithInternalError(c, errListAdvertisers, "")
			return
		}

		c.JSON(http.StatusOK, names)
	}
}
