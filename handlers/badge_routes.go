// handlers/badge_routes.go
package handlers

import (
	"log"
	"strconv"

	"state-tracker-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupBadgeRoutes(app *fiber.App, badgeService *services.BadgeService) {
	// Get all badges
	app.Get("/api/badges", func(c *fiber.Ctx) error {
		badges, err := badgeService.GetAllBadges()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch badges",
				"cause": err.Error(),
			})
		}
		return c.JSON(badges)
	})

	// Get badges by category
	app.Get("/api/badges/category/:category", func(c *fiber.Ctx) error {
		badges, err := badgeService.GetBadgesByCategory(c.Params("category"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch badges by category",
				"cause": err.Error(),
			})
		}
		return c.JSON(badges)
	})

	// Get a specific badge
	app.Get("/api/badges/:badgeId", func(c *fiber.Ctx) error {
		badgeID, err := strconv.ParseUint(c.Params("badgeId"), 10, 32)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid badge ID",
			})
		}
		badge, err := badgeService.GetBadgeByID(uint(badgeID))
		if err != nil {
			if notFound(err) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "badge not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch badge",
				"cause": err.Error(),
			})
		}
		return c.JSON(badge)
	})

	// Get user badges
	app.Get("/api/user-badges/:userId", func(c *fiber.Ctx) error {
		userBadges, err := badgeService.GetUserBadges(c.Params("userId"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch user badges",
				"cause": err.Error(),
			})
		}
		return c.JSON(userBadges)
	})

	// Check for new badges — the eligibility pass trigger. The response is
	// always the well-formed {newBadgesEarned, badges} shape; internal
	// details never leak past the log.
	app.Post("/api/check-badges/:userId", func(c *fiber.Ctx) error {
		userID := c.Params("userId")
		newBadges, failures, err := badgeService.CheckForNewBadges(userID)
		if err != nil {
			log.Printf("❌ [BADGES] check failed for %s: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to check for new badges",
			})
		}
		for _, f := range failures {
			log.Printf("⚠️ [BADGES] award issue for %s, badge %d: %s", userID, f.BadgeID, f.Reason)
		}
		return c.JSON(fiber.Map{
			"newBadgesEarned": len(newBadges) > 0,
			"badges":          newBadges,
		})
	})

	// Directly award a badge to a user (admin/testing functionality)
	app.Post("/api/award-badge", func(c *fiber.Ctx) error {
		type Req struct {
			UserID   string                 `json:"userId"`
			BadgeID  uint                   `json:"badgeId"`
			Metadata map[string]interface{} `json:"metadata"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if req.UserID == "" || req.BadgeID == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "userId and badgeId are required",
			})
		}

		if _, err := badgeService.GetBadgeByID(req.BadgeID); err != nil {
			if notFound(err) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "badge not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch badge",
				"cause": err.Error(),
			})
		}

		record, _, err := badgeService.AwardBadge(req.UserID, req.BadgeID, req.Metadata)
		if record == nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to award badge",
				"cause": err.Error(),
			})
		}
		return c.JSON(record)
	})
}
