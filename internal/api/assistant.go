package api

import (
	"net/http"

	"edutracker_go_backend/internal/auth"
	apperrors "edutracker_go_backend/internal/errors"
	"edutracker_go_backend/internal/services"

	"github.com/gin-gonic/gin"
)

func studyTipsHandler(assistantService *services.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := c.DefaultQuery("subject", "General Studies")
		user, _ := auth.CurrentUser(c)

		tips, err := assistantService.GetStudyTips(c.Request.Context(), user.ID, subject)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"subject": subject, "tips": tips})
	}
}

func clarifyDoubtHandler(assistantService *services.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Doubt string `json:"doubt" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.HandleError(c, apperrors.NewValidationError(err.Error()))
			return
		}

		user, _ := auth.CurrentUser(c)
		clarification, err := assistantService.GetDoubtClarification(c.Request.Context(), user.ID, req.Doubt)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"clarification": clarification})
	}
}
