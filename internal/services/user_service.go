package services

import (
	"errors"
	"fmt"
	"time"

	apperrors "edutracker_go_backend/internal/errors"
	"edutracker_go_backend/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

// UserService handles student account creation and credential verification.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// CreateUser registers a new student account. Every account gets the student
// role; there is no self-service role escalation.
func (us *UserService) CreateUser(fullName, email, password string) (*models.User, error) {
	if email == "" || fullName == "" {
		return nil, apperrors.NewValidationError("Full name and email are required")
	}
	if len(password) < minPasswordLength {
		return nil, apperrors.NewValidationError("Password must be at least 6 characters")
	}

	var existing models.User
	err := us.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, apperrors.NewValidationError("An account with this email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         "student",
		LastLogin:    time.Now(),
	}
	if err := us.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Authenticate verifies credentials and updates the last-login timestamp.
func (us *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := us.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewUnauthorizedError()
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.NewUnauthorizedError()
	}

	now := time.Now()
	if err := us.db.Model(&user).Update("last_login", now).Error; err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}
	user.LastLogin = now
	return &user, nil
}

func (us *UserService) GetUserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := us.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
