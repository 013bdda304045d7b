package models

import (
	"time"
)

const (
	ActionVisited     = "visited"
	ActionUnvisited   = "unvisited"
	ActionEarnedBadge = "earned_badge"

	// ActivityStateBadge is the placeholder state id on earned_badge entries.
	ActivityStateBadge = "badge"
)

// Activity is one entry in a user's recent-activity feed.
type Activity struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"userId" gorm:"index;not null"`
	StateID   string    `json:"stateId" gorm:"not null"`
	StateName string    `json:"stateName" gorm:"not null"` // state name, or badge name for earned_badge
	Action    string    `json:"action" gorm:"not null"`    // "visited", "unvisited" or "earned_badge"
	Timestamp time.Time `json:"timestamp" gorm:"index;not null"`
}
