package api

import (
	"edutracker_go_backend/internal/auth"
	"edutracker_go_backend/internal/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	userService *services.UserService,
	taskService *services.TaskService,
	markService *services.MarkService,
	studySessionService *services.StudySessionService,
	assistantService *services.AssistantService,
) {
	api := r.Group("/api", auth.AuthMiddleware(userService))
	{
		api.GET("/tasks", listTasksHandler(taskService))
		api.POST("/tasks", createTaskHandler(taskService))
		api.POST("/tasks/:id/complete", completeTaskHandler(taskService))
		api.DELETE("/tasks/:id", deleteTaskHandler(taskService))

		api.GET("/marks", listMarksHandler(markService))
		api.POST("/marks", addMarkHandler(markService))
		api.DELETE("/marks/:id", deleteMarkHandler(markService))

		api.GET("/study-sessions", listStudySessionsHandler(studySessionService))
		api.POST("/study-sessions", logStudyTimeHandler(studySessionService))
		api.PATCH("/study-sessions/:id", updateStudyTimeHandler(studySessionService))
		api.DELETE("/study-sessions/:id", deleteStudySessionHandler(studySessionService))
		api.GET("/study-sessions/analytics", studyAnalyticsHandler(studySessionService))
		api.POST("/pomodoro/complete", completePomodoroHandler(studySessionService))

		api.GET("/assistant/tips", studyTipsHandler(assistantService))
		api.POST("/assistant/clarify", clarifyDoubtHandler(assistantService))
	}
}
