package routes

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ads-admin-backend/internal/config"
	"ads-admin-backend/internal/logger"
	"ads-admin-backend/internal/storage"
	"ads-admin-backend/middleware"
	"ads-admin-backend/models"
	"ads-admin-backend/utils"
)

// Error messages stay in Russian; the panel shows them to operators as-is.
const (
	errListTasks  = "Ошибка при получении задач"
	errCreateTask = "Ошибка при создании задачи"
	errUpdateTask = "Ошибка при обновлении задачи"
	errDeleteTask = "Ошибка при удалении задачи"
	errBadTaskID  = "Неверный ID задачи"
	errNoFields   = "Нет полей для обновления"
	errBadBody    = "Некорректное тело запроса"
)

// SetupTaskRoutes wires the ad-task CRUD surface.
func SetupTaskRoutes(router *gin.Engine, cfg *config.Config, store *storage.TaskStore) {
	api := router.Group("/api")

	api.GET("/tasks", handleListTasks(store))
	api.POST("/tasks", handleCreateTask(store))
	api.PUT("/tasks/:id", handleUpdateTask(cfg, store))
	api.DELETE("/tasks/:id", handleDeleteTask(store))
}

func handleListTasks(store *storage.TaskStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}

		tasks, err := store.List(c.Request.Context(), storage.ListFilter{
			Status:     c.Query("status"),
			Advertiser: c.Query("advertiser"),
			Page:       page,
		})
		if err != nil {
			logger.Error("failed to list tasks", "error", err, "request_id", middleware.GetRequestID(c))
			utils.RespondWithInternalError(c, errListTasks, "")
			return
		}

		c.JSON(http.StatusOK, tasks)
	}
}

func handleCreateTask(store *storage.TaskStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateTaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, errBadBody)
			return
		}

		task := req.Task()
		if err := store.Create(c.Request.Context(), task); err != nil {
			logger.Error("failed to create task", "error", err, "request_id", middleware.GetRequestID(c))
			utils.RespondWithInternalError(c, errCreateTask, "")
			return
		}

		c.JSON(http.StatusCreated, task)
	}
}

func handleUpdateTask(cfg *config.Config, store *storage.TaskStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			utils.RespondWithBadRequest(c, errBadTaskID)
			return
		}

		var body map[string]json.RawMessage
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.RespondWithBadRequest(c, errBadBody)
			return
		}

		fields := models.CoerceFields(body)
		if len(fields) == 0 {
			utils.RespondWithBadRequest(c, errNoFields)
			return
		}

		task, err := store.Update(c.Request.Context(), id, fields)
		if err != nil {
			logger.Error("failed to update task", "error", err, "task_id", id, "request_id", middleware.GetRequestID(c))
			details := ""
			if !cfg.Production() {
				details = err.Error()
			}
			utils.RespondWithInternalError(c, errUpdateTask, details)
			return
		}

		c.JSON(http.StatusOK, task)
	}
}

func handleDeleteTask(store *storage.TaskStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			utils.RespondWithBadRequest(c, errBadTaskID)
			return
		}

		if err := store.Delete(c.Request.Context(), id); err != nil {
			logger.Error("failed to delete task", "error", err, "task_id", id, "request_id", middleware.GetRequestID(c))
			utils.RespondWithInternalError(c, errDeleteTask, "")
			return
		}

		c.Status(http.StatusNoContent)
	}
}
