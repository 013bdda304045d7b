package services

import (
	"fmt"
	"log"

	"state-tracker-system/models"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// SeedStates loads the 51-entry state catalog if the table is empty.
func SeedStates(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.State{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Found %d existing states. Skipping seeding.", count)
		return nil
	}

	states := make([]models.State, len(models.USAStates))
	copy(states, models.USAStates)
	if err := db.Create(&states).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded %d states.", len(states))
	return nil
}

// SeedBadges loads the default badge catalog if the table is empty.
// Image URLs are derived from the badge name.
func SeedBadges(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Badge{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Found %d existing badges. Skipping seeding.", count)
		return nil
	}

	badges := make([]models.Badge, len(models.DefaultBadges))
	copy(badges, models.DefaultBadges)
	for i := range badges {
		badges[i].ImageURL = fmt.Sprintf("/badges/%s.svg", slug.Make(badges[i].Name))
	}
	if err := db.Create(&badges).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded %d badges.", len(badges))
	return nil
}
