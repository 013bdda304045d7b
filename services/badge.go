package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"state-tracker-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BadgeService struct {
	DB *gorm.DB
}

func NewBadgeService(db *gorm.DB) *BadgeService {
	return &BadgeService{DB: db}
}

// UserBadgeWithBadge mirrors the {badge, userBadge} pairs the UI renders.
type UserBadgeWithBadge struct {
	Badge     models.Badge     `json:"badge"`
	UserBadge models.UserBadge `json:"userBadge"`
}

// AwardFailure records a badge that hit a write error during a check pass.
// When the UserBadge row itself was created but the activity entry failed,
// the badge still counts as awarded and the failure is reported alongside.
type AwardFailure struct {
	BadgeID uint   `json:"badgeId"`
	Reason  string `json:"reason"`
}

// GetAllBadges returns the full catalog in its stable display order.
func (s *BadgeService) GetAllBadges() ([]models.Badge, error) {
	var badges []models.Badge
	err := s.DB.Order("tier, name").Find(&badges).Error
	return badges, err
}

func (s *BadgeService) GetBadgeByID(badgeID uint) (*models.Badge, error) {
	var badge models.Badge
	if err := s.DB.Where("id = ?", badgeID).First(&badge).Error; err != nil {
		return nil, err
	}
	return &badge, nil
}

func (s *BadgeService) GetBadgesByCategory(category string) ([]models.Badge, error) {
	var badges []models.Badge
	err := s.DB.Where("category = ?", category).Order("tier, name").Find(&badges).Error
	return badges, err
}

// GetUserBadges returns the badges a user holds, newest first, each paired
// with its catalog entry.
func (s *BadgeService) GetUserBadges(userID string) ([]UserBadgeWithBadge, error) {
	userID = NormalizeUserID(userID)

	var held []models.UserBadge
	if err := s.DB.Where("user_id = ?", userID).Order("earned_at DESC").Find(&held).Error; err != nil {
		return nil, err
	}
	if len(held) == 0 {
		return []UserBadgeWithBadge{}, nil
	}

	ids := make([]uint, 0, len(held))
	for _, ub := range held {
		ids = append(ids, ub.BadgeID)
	}
	var badges []models.Badge
	if err := s.DB.Where("id IN ?", ids).Find(&badges).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Badge, len(badges))
	for _, b := range badges {
		byID[b.ID] = b
	}

	result := make([]UserBadgeWithBadge, 0, len(held))
	for _, ub := range held {
		badge, ok := byID[ub.BadgeID]
		if !ok {
			// Orphaned award (catalog row gone) — keep the feed working.
			log.Printf("⚠️ [BADGES] user badge %s references missing badge %d", ub.ID, ub.BadgeID)
			continue
		}
		result = append(result, UserBadgeWithBadge{Badge: badge, UserBadge: ub})
	}
	return result, nil
}

// heldBadgeIDs returns the set of badge ids the user already holds.
func (s *BadgeService) heldBadgeIDs(userID string) (map[uint]bool, error) {
	var ids []uint
	err := s.DB.Model(&models.UserBadge{}).
		Where("user_id = ?", userID).
		Pluck("badge_id", &ids).Error
	if err != nil {
		return nil, err
	}
	held := make(map[uint]bool, len(ids))
	for _, id := range ids {
		held[id] = true
	}
	return held, nil
}

// AwardBadge creates the UserBadge record for (user, badge) exactly once and
// appends the earned_badge activity. Already awarded — including by a
// concurrent check that won the insert race — returns the existing record
// with awarded=false and no error.
//
// The activity entry is best effort: its failure is returned but the award
// itself stands.
func (s *BadgeService) AwardBadge(userID string, badgeID uint, metadata map[string]interface{}) (*models.UserBadge, bool, error) {
	userID = NormalizeUserID(userID)

	var existing models.UserBadge
	err := s.DB.Where("user_id = ? AND badge_id = ?", userID, badgeID).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	record := models.UserBadge{
		ID:      uuid.NewString(),
		UserID:  userID,
		BadgeID: badgeID,
	}
	if metadata != nil {
		if buf, merr := json.Marshal(metadata); merr == nil {
			record.Metadata = string(buf)
		} else {
			log.Printf("⚠️ [BADGES] dropping unserializable metadata for badge %d: %v", badgeID, merr)
		}
	}

	if err := s.DB.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race to a concurrent check — the winner's row stands.
			if ferr := s.DB.Where("user_id = ? AND badge_id = ?", userID, badgeID).First(&existing).Error; ferr != nil {
				return nil, false, ferr
			}
			return &existing, false, nil
		}
		return nil, false, err
	}

	log.Printf("🎖️ [BADGES] badge %d awarded to %s", badgeID, userID)

	if aerr := s.appendBadgeActivity(userID, badgeID); aerr != nil {
		log.Printf("⚠️ [BADGES] badge %d awarded to %s but activity write failed: %v", badgeID, userID, aerr)
		return &record, true, aerr
	}
	return &record, true, nil
}

func (s *BadgeService) appendBadgeActivity(userID string, badgeID uint) error {
	badge, err := s.GetBadgeByID(badgeID)
	if err != nil {
		return fmt.Errorf("failed to resolve badge %d for activity: %w", badgeID, err)
	}
	activity := models.Activity{
		UserID:    userID,
		StateID:   models.ActivityStateBadge,
		StateName: badge.Name,
		Action:    models.ActionEarnedBadge,
		Timestamp: time.Now(),
	}
	return s.DB.Create(&activity).Error
}

// CheckForNewBadges runs one full eligibility pass for a user:
// fetch the visited set and catalog, evaluate, then award sequentially in
// catalog order (sequential on purpose — it keeps the activity feed ordered).
//
// A read failure aborts the pass with nothing awarded. A per-badge write
// failure is collected into the failure list and the pass continues.
func (s *BadgeService) CheckForNewBadges(userID string) ([]models.Badge, []AwardFailure, error) {
	userID = NormalizeUserID(userID)

	visitedCodes, err := NewStateService(s.DB).VisitedStateCodes(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load visited states: %w", err)
	}

	allBadges, err := s.GetAllBadges()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load badge catalog: %w", err)
	}

	held, err := s.heldBadgeIDs(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load held badges: %w", err)
	}

	unearned := make([]models.Badge, 0, len(allBadges))
	for _, badge := range allBadges {
		if !held[badge.ID] {
			unearned = append(unearned, badge)
		}
	}

	earned := EvaluateBadges(visitedCodes, unearned)

	newBadges := make([]models.Badge, 0, len(earned))
	var failures []AwardFailure
	for _, e := range earned {
		record, awarded, aerr := s.AwardBadge(userID, e.Badge.ID, e.Metadata)
		if record == nil {
			log.Printf("❌ [BADGES] failed to award badge %d to %s: %v", e.Badge.ID, userID, aerr)
			failures = append(failures, AwardFailure{BadgeID: e.Badge.ID, Reason: aerr.Error()})
			continue
		}
		if !awarded {
			// A concurrent pass already recorded it — not new for this call.
			continue
		}
		newBadges = append(newBadges, e.Badge)
		if aerr != nil {
			failures = append(failures, AwardFailure{BadgeID: e.Badge.ID, Reason: aerr.Error()})
		}
	}

	log.Printf("🎖️ [BADGES] user %s: %d visited state(s), %d new badge(s), %d failure(s)",
		userID, len(visitedCodes), len(newBadges), len(failures))
	return newBadges, failures, nil
}
