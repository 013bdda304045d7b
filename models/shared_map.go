package models

import (
	"time"
)

// SharedMap is a snapshot of a user's map, published under a short share code.
// ImageData holds the raw data-URL payload; when R2 is configured the image is
// offloaded there instead and ImageURL points at the CDN copy.
type SharedMap struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"userId" gorm:"index;not null"`
	ImageData string    `json:"imageData,omitempty" gorm:"type:text"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	ShareCode string    `json:"shareCode" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
