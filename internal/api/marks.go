package api

import (
	"net/http"

	"edutracker_go_backend/internal/auth"
	apperrors "edutracker_go_backend/internal/errors"
	"edutracker_go_backend/internal/services"

	"github.com/gin-gonic/gin"
)

func listMarksHandler(markService *services.MarkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := auth.CurrentUser(c)
		marks, err := markService.ListMarks(user.ID)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, marks)
	}
}

func addMarkHandler(markService *services.MarkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Subject string `json:"subject" binding:"required"`
			Score   *int   `json:"score" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.HandleError(c, apperrors.NewValidationError(err.Error()))
			return
		}

		user, _ := auth.CurrentUser(c)
		mark, err := markService.AddMark(user.ID, req.Subject, *req.Score)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusCreated, mark)
	}
}

func deleteMarkHandler(markService *services.MarkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		markID, err := pathID(c)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		user, _ := auth.CurrentUser(c)
		if err := markService.DeleteMark(user.ID, markID); err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Mark deleted"})
	}
}
