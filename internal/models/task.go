package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	gorm.Model
	UserID      uuid.UUID  `gorm:"type:uuid;index" json:"userId"`
	Title       string     `gorm:"not null" json:"title"`
	DueDate     time.Time  `json:"dueDate"`
	Completed   bool       `gorm:"default:false;index" json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
