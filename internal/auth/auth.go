package auth

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	apperrors "edutracker_go_backend/internal/errors"
	"edutracker_go_backend/internal/models"
	"edutracker_go_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

func SetupRoutes(r *gin.Engine, userService *services.UserService, tokenLifetime time.Duration) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", signUpHandler(userService, tokenLifetime))
		auth.POST("/signin", signInHandler(userService, tokenLifetime))
		auth.POST("/signout", signOutHandler())
		auth.GET("/user", AuthMiddleware(userService), getUser)
	}
}

// AuthMiddleware verifies the session token and loads the requesting user
// into the gin context. WebSocket upgrade requests carry the token as a query
// parameter since browsers cannot set headers on upgrade.
func AuthMiddleware(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		if websocket.IsWebSocketUpgrade(c.Request) {
			token = c.Query("token")
		} else {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
				c.Abort()
				return
			}
			bearerToken := strings.Split(authHeader, " ")
			if len(bearerToken) != 2 {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
				c.Abort()
				return
			}
			token = bearerToken[1]
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			c.Abort()
			return
		}

		userID, err := VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		user, err := userService.GetUserByID(userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// CurrentUser extracts the middleware-resolved user from the gin context.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func signUpHandler(userService *services.UserService, tokenLifetime time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			FullName string `json:"fullName" binding:"required"`
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.HandleError(c, apperrors.NewValidationError(err.Error()))
			return
		}

		user, err := userService.CreateUser(req.FullName, req.Email, req.Password)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		token, err := IssueToken(user.ID, tokenLifetime)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
	}
}

func signInHandler(userService *services.UserService, tokenLifetime time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.HandleError(c, apperrors.NewValidationError(err.Error()))
			return
		}

		user, err := userService.Authenticate(req.Email, req.Password)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		token, err := IssueToken(user.ID, tokenLifetime)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

// signOutHandler acknowledges sign-out; tokens are stateless and discarded by
// the client.
func signOutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
	}
}

func getUser(c *gin.Context) {
	user, exists := CurrentUser(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// IssueToken signs an HS256 session token carrying the user id.
func IssueToken(userID uuid.UUID, lifetime time.Duration) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", apperrors.NewNotConfiguredError("JWT_SECRET is not configured")
	}

	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(lifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken validates a session token and returns the user id it carries.
func VerifyToken(tokenString string) (uuid.UUID, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return uuid.Nil, apperrors.NewNotConfiguredError("JWT_SECRET is not configured")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, errors.New("invalid token")
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("invalid subject claim")
	}
	return userID, nil
}
