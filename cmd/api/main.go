package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"edutracker_go_backend/cmd/api/config"
	"edutracker_go_backend/internal/api"
	"edutracker_go_backend/internal/auth"
	"edutracker_go_backend/internal/database"
	"edutracker_go_backend/internal/services"
	"edutracker_go_backend/internal/utils/broker"
	"edutracker_go_backend/internal/wsocket"

	"github.com/gorilla/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET is not set in the environment")
	}

	// The assistant API key is optional at startup; requests against an
	// unconfigured assistant fail with a configuration error instead.
	groqAPIKey := os.Getenv("GROQ_API_KEY")
	if groqAPIKey == "" {
		log.Println("GROQ_API_KEY is not set; AI assistant requests will be rejected")
	}

	database.InitDB()

	cfg := config.NewConfig()
	messageBroker := broker.NewBroker()

	// Initialize internal services
	userService := services.NewUserService(database.DB)
	taskService := services.NewTaskService(services.NewTaskServiceDB(database.DB), messageBroker)
	markService := services.NewMarkService(services.NewMarkServiceDB(database.DB), messageBroker)
	studySessionService := services.NewStudySessionService(services.NewStudySessionServiceDB(database.DB), messageBroker)

	responseCacheService := services.NewResponseCacheService(
		services.NewResponseCacheDB(database.DB),
		cfg.CacheFreshnessWindow,
	)
	assistantService := services.NewAssistantService(
		services.NewGroqClient(groqAPIKey, groqBaseURL, cfg.CompletionTimeout),
		cfg.CompletionModel,
		responseCacheService,
	)

	r := gin.Default()

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:5173" // Default to your local frontend
	}

	// CORS middleware configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(allowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// WebSocket upgrader
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true // TODO: Implement a more secure check in production
		},
	}

	wsHandler := wsocket.NewHandler(taskService, markService, studySessionService, upgrader, messageBroker)

	api.SetupRoutes(r, userService, taskService, markService, studySessionService, assistantService)
	auth.SetupRoutes(r, userService, cfg.TokenLifetime)

	// Live-query subscription route
	r.GET("/ws", auth.AuthMiddleware(userService), func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
			return
		}
		wsHandler.HandleWebSocket(c.Writer, c.Request, user)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
