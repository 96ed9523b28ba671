package api

import (
	"net/http"
	"strconv"
	"time"

	"edutracker_go_backend/internal/auth"
	apperrors "edutracker_go_backend/internal/errors"
	"edutracker_go_backend/internal/services"

	"github.com/gin-gonic/gin"
)

func listTasksHandler(taskService *services.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := auth.CurrentUser(c)
		tasks, err := taskService.ListOpenTasks(user.ID)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, tasks)
	}
}

func createTaskHandler(taskService *services.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Title   string    `json:"title" binding:"required"`
			DueDate time.Time `json:"dueDate" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.HandleError(c, apperrors.NewValidationError(err.Error()))
			return
		}

		user, _ := auth.CurrentUser(c)
		task, err := taskService.CreateTask(user.ID, req.Title, req.DueDate)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusCreated, task)
	}
}

func completeTaskHandler(taskService *services.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID, err := pathID(c)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		user, _ := auth.CurrentUser(c)
		if err := taskService.CompleteTask(user.ID, taskID); err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Task completed"})
	}
}

func deleteTaskHandler(taskService *services.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID, err := pathID(c)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		user, _ := auth.CurrentUser(c)
		if err := taskService.DeleteTask(user.ID, taskID); err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
	}
}

// pathID parses the numeric :id path parameter shared by the record routes.
func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperrors.NewValidationError("Invalid id")
	}
	return uint(id), nil
}
