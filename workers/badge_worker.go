package workers

import (
	"context"
	"log"

	"state-tracker-system/services"
)

// BadgeCheckWorker re-runs the badge eligibility pass in the background after
// visited-state mutations, so toggle requests stay fast. The explicit
// POST /api/check-badges endpoint shares the same pass and both are
// idempotent, so a dropped or duplicated enqueue is harmless.
type BadgeCheckWorker struct {
	Badges *services.BadgeService
	queue  chan string
}

func NewBadgeCheckWorker(badges *services.BadgeService, queueSize int) *BadgeCheckWorker {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &BadgeCheckWorker{
		Badges: badges,
		queue:  make(chan string, queueSize),
	}
}

// Enqueue never blocks the request path. A dropped check is repaired by the
// next toggle or an explicit check-badges call.
func (w *BadgeCheckWorker) Enqueue(userID string) {
	select {
	case w.queue <- userID:
	default:
		log.Printf("⚠️ [BADGE_WORKER] queue full, dropping re-check for %s", userID)
	}
}

// Start consumes the queue until the context is cancelled.
func (w *BadgeCheckWorker) Start(ctx context.Context) {
	log.Println("Starting badge re-check worker...")
	for {
		select {
		case <-ctx.Done():
			log.Println("Badge re-check worker stopped.")
			return
		case userID := <-w.queue:
			newBadges, failures, err := w.Badges.CheckForNewBadges(userID)
			if err != nil {
				log.Printf("❌ [BADGE_WORKER] check failed for %s: %v", userID, err)
				continue
			}
			if len(failures) > 0 {
				log.Printf("⚠️ [BADGE_WORKER] %d award issue(s) for %s", len(failures), userID)
			}
			if len(newBadges) > 0 {
				log.Printf("🎖️ [BADGE_WORKER] user %s earned %d badge(s)", userID, len(newBadges))
			}
		}
	}
}
