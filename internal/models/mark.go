package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Mark struct {
	gorm.Model
	UserID     uuid.UUID `gorm:"type:uuid;index" json:"userId"`
	Subject    string    `gorm:"not null" json:"subject"`
	Score      int       `gorm:"not null" json:"score"`
	RecordedAt time.Time `json:"recordedAt"`
}
