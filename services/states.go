package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"state-tracker-system/models"

	"gorm.io/gorm"
)

type StateService struct {
	DB *gorm.DB
}

func NewStateService(db *gorm.DB) *StateService {
	return &StateService{DB: db}
}

// NormalizeUserID matches the historical client behavior of sending bare
// numeric ids: those are stored with a "user_" prefix. Everything that keys
// rows by user id goes through here so both spellings land on the same rows.
func NormalizeUserID(userID string) string {
	userID = strings.TrimSpace(userID)
	if userID == "" || strings.HasPrefix(userID, "user_") {
		return userID
	}
	if _, err := strconv.Atoi(userID); err == nil {
		return "user_" + userID
	}
	return userID
}

// GetStates returns the full state catalog, alphabetical.
func (s *StateService) GetStates() ([]models.State, error) {
	var states []models.State
	err := s.DB.Order("name").Find(&states).Error
	return states, err
}

// GetStateByID looks up a catalog entry by its two-letter code.
func (s *StateService) GetStateByID(stateID string) (*models.State, error) {
	var state models.State
	if err := s.DB.Where("state_id = ?", stateID).First(&state).Error; err != nil {
		return nil, err
	}
	return &state, nil
}

// GetVisitedStates returns all visited-state rows for a user, including rows
// toggled back to visited=false.
func (s *StateService) GetVisitedStates(userID string) ([]models.VisitedState, error) {
	userID = NormalizeUserID(userID)
	if userID == "" {
		return []models.VisitedState{}, nil
	}
	var visited []models.VisitedState
	err := s.DB.Where("user_id = ?", userID).Find(&visited).Error
	return visited, err
}

// VisitedStateCodes returns the set of state codes currently marked visited —
// the evaluator's input.
func (s *StateService) VisitedStateCodes(userID string) ([]string, error) {
	userID = NormalizeUserID(userID)
	var codes []string
	err := s.DB.Model(&models.VisitedState{}).
		Where("user_id = ? AND visited = ?", userID, true).
		Pluck("state_id", &codes).Error
	return codes, err
}

// ToggleStateVisited upserts the (state, user) row to the requested visited
// flag. The composite unique index makes concurrent first-toggles race; the
// loser retries as an update.
func (s *StateService) ToggleStateVisited(stateID, userID string, visited bool) (*models.VisitedState, error) {
	userID = NormalizeUserID(userID)
	now := time.Now()

	var existing models.VisitedState
	err := s.DB.Where("state_id = ? AND user_id = ?", stateID, userID).First(&existing).Error
	if err == nil {
		existing.Visited = visited
		existing.VisitedAt = now
		if err := s.DB.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	record := models.VisitedState{
		StateID:   stateID,
		UserID:    userID,
		Visited:   visited,
		VisitedAt: now,
	}
	if err := s.DB.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Concurrent insert won — update the winner's row instead.
			if ferr := s.DB.Where("state_id = ? AND user_id = ?", stateID, userID).First(&existing).Error; ferr != nil {
				return nil, ferr
			}
			existing.Visited = visited
			existing.VisitedAt = now
			if serr := s.DB.Save(&existing).Error; serr != nil {
				return nil, serr
			}
			return &existing, nil
		}
		return nil, err
	}
	return &record, nil
}

// ResetVisitedStates wipes all visited rows for a user. Already earned
// badges are not touched.
func (s *StateService) ResetVisitedStates(userID string) error {
	userID = NormalizeUserID(userID)
	return s.DB.Where("user_id = ?", userID).Delete(&models.VisitedState{}).Error
}
