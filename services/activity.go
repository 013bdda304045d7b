package services

import (
	"state-tracker-system/models"

	"gorm.io/gorm"
)

type ActivityService struct {
	DB *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{DB: db}
}

// GetActivities returns the most recent feed entries for a user.
func (s *ActivityService) GetActivities(userID string, limit int) ([]models.Activity, error) {
	userID = NormalizeUserID(userID)
	if userID == "" {
		return []models.Activity{}, nil
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	var activities []models.Activity
	err := s.DB.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

// AddActivity appends one feed entry.
func (s *ActivityService) AddActivity(activity *models.Activity) error {
	activity.UserID = NormalizeUserID(activity.UserID)
	return s.DB.Create(activity).Error
}
