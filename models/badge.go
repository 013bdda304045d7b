package models

import (
	"encoding/json"
	"time"
)

// Badge: static catalog entry (seeded at boot, immutable afterwards).
// Criteria is the raw jsonb rule payload — always go through ParseCriteria
// before evaluating it, never read the loose form anywhere else.
type Badge struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"uniqueIndex;not null"` // e.g., "Explorer", "Four Corners"
	Description string          `json:"description" gorm:"not null"`
	ImageURL    string          `json:"imageUrl" gorm:"not null"`
	Criteria    json.RawMessage `json:"criteria" gorm:"type:jsonb;not null"`
	Tier        int             `json:"tier" gorm:"not null;default:1"` // 1=bronze .. 4=platinum, presentational only
	Category    string          `json:"category" gorm:"not null"`       // "milestone", "regional", "special"
	CreatedAt   time.Time       `json:"createdAt" gorm:"autoCreateTime"`
}

// UserBadge: awarded instance. The composite unique index is the idempotency
// contract — at most one row per (user, badge), concurrent checks included.
// Awards are sticky: resetting visited states never deletes these rows.
type UserBadge struct {
	ID       string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID   string    `json:"userId" gorm:"uniqueIndex:idx_user_badges_user_badge;not null"`
	BadgeID  uint      `json:"badgeId" gorm:"uniqueIndex:idx_user_badges_user_badge;not null"`
	EarnedAt time.Time `json:"earnedAt" gorm:"autoCreateTime"`
	Metadata string    `json:"metadata,omitempty" gorm:"type:jsonb"` // facts captured at award time, e.g. {"statesCount": 10}
}

// DefaultBadges is the seed catalog. ImageURL is left empty here; the seeder
// derives it from the badge name.
var DefaultBadges = []Badge{
	// Exploration milestones (bronze → platinum)
	{
		Name:        "Explorer",
		Description: "Visit 10 different states",
		Criteria:    json.RawMessage(`{"type": "states_count", "value": 10}`),
		Tier:        1,
		Category:    "milestone",
	},
	{
		Name:        "Adventurer",
		Description: "Visit 25 different states",
		Criteria:    json.RawMessage(`{"type": "states_count", "value": 25}`),
		Tier:        2,
		Category:    "milestone",
	},
	{
		Name:        "Voyager",
		Description: "Visit 40 different states",
		Criteria:    json.RawMessage(`{"type": "states_count", "value": 40}`),
		Tier:        3,
		Category:    "milestone",
	},
	{
		Name:        "Globetrotter",
		Description: "Visit all 50 states - you've seen it all!",
		Criteria:    json.RawMessage(`{"type": "states_count", "value": 50}`),
		Tier:        4,
		Category:    "milestone",
	},

	// Regional badges
	{
		Name:        "West Coast Explorer",
		Description: "Visit all West Coast states (CA, OR, WA)",
		Criteria:    json.RawMessage(`{"type": "region_complete", "value": ["CA", "OR", "WA"]}`),
		Tier:        2,
		Category:    "regional",
	},
	{
		Name:        "East Coast Traveler",
		Description: "Visit all East Coast states (ME, NH, MA, RI, CT, NY, NJ, DE, MD, VA, NC, SC, GA, FL)",
		Criteria:    json.RawMessage(`{"type": "region_complete", "value": ["ME", "NH", "MA", "RI", "CT", "NY", "NJ", "DE", "MD", "VA", "NC", "SC", "GA", "FL"]}`),
		Tier:        3,
		Category:    "regional",
	},
	{
		Name:        "Great Lakes Voyager",
		Description: "Visit all Great Lakes states (MN, WI, MI, IL, IN, OH, PA, NY)",
		Criteria:    json.RawMessage(`{"type": "region_complete", "value": ["MN", "WI", "MI", "IL", "IN", "OH", "PA", "NY"]}`),
		Tier:        2,
		Category:    "regional",
	},
	{
		Name:        "Southern Charm",
		Description: "Visit all Southern states (TX, OK, AR, LA, MS, AL, TN, KY, WV, VA, NC, SC, GA, FL)",
		Criteria:    json.RawMessage(`{"type": "region_complete", "value": ["TX", "OK", "AR", "LA", "MS", "AL", "TN", "KY", "WV", "VA", "NC", "SC", "GA", "FL"]}`),
		Tier:        3,
		Category:    "regional",
	},

	// Special badges
	{
		Name:        "Four Corners",
		Description: "Visit the Four Corners states (AZ, CO, NM, UT)",
		Criteria:    json.RawMessage(`{"type": "specific_states", "value": ["AZ", "CO", "NM", "UT"]}`),
		Tier:        2,
		Category:    "special",
	},
	{
		Name:        "Mountain Climber",
		Description: "Visit all Rocky Mountain states (MT, ID, WY, UT, CO, NM, AZ)",
		Criteria:    json.RawMessage(`{"type": "specific_states", "value": ["MT", "ID", "WY", "UT", "CO", "NM", "AZ"]}`),
		Tier:        2,
		Category:    "special",
	},
	{
		Name:        "Hawaiian Paradise",
		Description: "Visit Hawaii",
		Criteria:    json.RawMessage(`{"type": "specific_states", "value": ["HI"]}`),
		Tier:        1,
		Category:    "special",
	},
	{
		Name:        "Alaskan Frontier",
		Description: "Visit Alaska",
		Criteria:    json.RawMessage(`{"type": "specific_states", "value": ["AK"]}`),
		Tier:        1,
		Category:    "special",
	},
}
