package models

import (
	"time"
)

// State is one catalog entry — the 50 US states plus DC.
type State struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StateID   string    `json:"stateId" gorm:"uniqueIndex;not null"` // e.g., "NY", "CA"
	Name      string    `json:"name" gorm:"not null"`                // "New York", "California"
	CreatedAt time.Time `json:"-" gorm:"autoCreateTime"`
}
