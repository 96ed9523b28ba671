package api

import (
	"net/http"

	"edutracker_go_backend/internal/auth"
	apperrors "edutracker_go_backend/internal/errors"
	"edutracker_go_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// rangeParam parses the ?range= query, defaulting to the weekly view.
func rangeParam(c *gin.Context) (services.TimeRange, error) {
	raw := c.DefaultQuery("range", string(services.RangeWeek))
	rng, err := services.ParseTimeRange(raw)
	if err != nil {
		return "", apperrors.NewValidationError("Range must be week, month or year")
	}
	return rng, nil
}

func listStudySessionsHandler(studySessionService *services.StudySessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rng, err := rangeParam(c)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		user, _ := auth.CurrentUser(c)
		sessions, err := studySessionService.ListSessions(user.ID, rng)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, sessions)
	}
}

func logStudyTimeHandler(studySessionService *services.StudySessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Minutes int `json:"minutes" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.HandleError(c, apperrors.NewValidationError(err.Error()))
			return
		}

		user, _ := auth.CurrentUser(c)
		session, err := studySessionService.LogStudyTime(user.ID, req.Minutes)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusCreated, session)
	}
}

func updateStudyTimeHandler(studySessionService *services.StudySessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := pathID(c)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		var req struct {
			Minutes int `json:"minutes" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.HandleError(c, apperrors.NewValidationError(err.Error()))
			return
		}

		user, _ := auth.CurrentUser(c)
		if err := studySessionService.UpdateStudyTime(user.ID, sessionID, req.Minutes); err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Study session updated"})
	}
}

func deleteStudySessionHandler(studySessionService *services.StudySessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := pathID(c)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		user, _ := auth.CurrentUser(c)
		if err := studySessionService.DeleteStudySession(user.ID, sessionID); err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Study session deleted"})
	}
}

func studyAnalyticsHandler(studySessionService *services.StudySessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rng, err := rangeParam(c)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		user, _ := auth.CurrentUser(c)
		buckets, err := studySessionService.GetAnalytics(user.ID, rng)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"range": rng, "buckets": buckets})
	}
}

func completePomodoroHandler(studySessionService *services.StudySessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Mode string `json:"mode" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.HandleError(c, apperrors.NewValidationError(err.Error()))
			return
		}

		user, _ := auth.CurrentUser(c)
		session, err := studySessionService.CompletePomodoro(user.ID, req.Mode)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		if session == nil {
			c.JSON(http.StatusOK, gin.H{"message": "Break completed"})
			return
		}
		c.JSON(http.StatusCreated, session)
	}
}
