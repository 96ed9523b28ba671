package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SourceManual marks sessions logged by hand from the dashboard;
// SourcePomodoro marks sessions recorded by a completed focus timer.
const (
	SourceManual   = "manual"
	SourcePomodoro = "pomodoro"
)

type StudySession struct {
	gorm.Model
	UserID     uuid.UUID `gorm:"type:uuid;index" json:"userId"`
	Minutes    int       `gorm:"not null" json:"minutes"`
	OccurredAt time.Time `gorm:"index" json:"occurredAt"`
	Source     string    `gorm:"default:manual" json:"source"`
}
