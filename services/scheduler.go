// services/scheduler.go
package services

import (
	"log"
	"time"

	"state-tracker-system/models"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// Shared maps older than this are purged by the cleanup job.
const sharedMapRetentionDays = 90

// StartCleanupScheduler runs hourly maintenance: expired sessions and stale
// shared maps are deleted.
func StartCleanupScheduler(db *gorm.DB) {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(func() {
			now := time.Now()

			res := db.Where("expires_at <= ?", now).Delete(&models.Session{})
			if res.Error != nil {
				log.Printf("[Cleanup] failed to purge sessions: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("✅ Purged %d expired session(s)", res.RowsAffected)
			}

			cutoff := now.AddDate(0, 0, -sharedMapRetentionDays)
			res = db.Where("created_at <= ?", cutoff).Delete(&models.SharedMap{})
			if res.Error != nil {
				log.Printf("[Cleanup] failed to purge shared maps: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("✅ Purged %d stale shared map(s)", res.RowsAffected)
			}
		}),
	)
}
