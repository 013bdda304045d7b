package models

import (
	"time"
)

// VisitedState records whether a user has marked a state as visited.
// One row per (state, user); toggling off keeps the row with visited=false
// so the activity history stays reconstructible.
type VisitedState struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StateID   string    `json:"stateId" gorm:"uniqueIndex:idx_visited_states_state_user;not null"`
	UserID    string    `json:"userId" gorm:"uniqueIndex:idx_visited_states_state_user;index;not null"`
	Visited   bool      `json:"visited" gorm:"not null"`
	VisitedAt time.Time `json:"visitedAt" gorm:"not null"`
}
