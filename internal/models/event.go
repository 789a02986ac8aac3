package models

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Date        time.Time `json:"date" gorm:"not null;index"`
	Location    string    `json:"location"`
	Description string    `json:"description" gorm:"type:text"`
	UserID      uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"` // owner, set at creation
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
