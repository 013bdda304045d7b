// handlers/state_routes.go
package handlers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"state-tracker-system/models"
	"state-tracker-system/services"
	"state-tracker-system/workers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStateRoutes(app *fiber.App, stateService *services.StateService, activityService *services.ActivityService, badgeWorker *workers.BadgeCheckWorker) {
	// Get all states
	app.Get("/api/states", func(c *fiber.Ctx) error {
		states, err := stateService.GetStates()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch states",
				"cause": err.Error(),
			})
		}
		return c.JSON(states)
	})

	// Get visited states for a user
	app.Get("/api/visited-states/:userId", func(c *fiber.Ctx) error {
		userID := c.Params("userId")
		visited, err := stateService.GetVisitedStates(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch visited states",
				"cause": err.Error(),
			})
		}
		return c.JSON(visited)
	})

	// Toggle state visited status
	app.Post("/api/visited-states/toggle", func(c *fiber.Ctx) error {
		type Req struct {
			StateID string `json:"stateId"`
			UserID  string `json:"userId"`
			Visited bool   `json:"visited"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if req.StateID == "" || req.UserID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "stateId and userId are required",
			})
		}

		visitedState, err := stateService.ToggleStateVisited(req.StateID, req.UserID, req.Visited)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to toggle state",
				"cause": err.Error(),
			})
		}

		// Feed entry is best effort — the toggle itself already stuck.
		if state, serr := stateService.GetStateByID(req.StateID); serr == nil {
			action := models.ActionVisited
			if !req.Visited {
				action = models.ActionUnvisited
			}
			if aerr := activityService.AddActivity(&models.Activity{
				UserID:    visitedState.UserID,
				StateID:   req.StateID,
				StateName: state.Name,
				Action:    action,
				Timestamp: time.Now(),
			}); aerr != nil {
				log.Printf("⚠️ [STATES] toggle recorded but activity write failed: %v", aerr)
			}
		}

		// Kick off a badge re-check in the background.
		if badgeWorker != nil {
			badgeWorker.Enqueue(visitedState.UserID)
		}

		return c.JSON(visitedState)
	})

	// Reset all visited states for a user
	app.Post("/api/visited-states/reset/:userId", func(c *fiber.Ctx) error {
		userID := c.Params("userId")
		if err := stateService.ResetVisitedStates(userID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to reset states",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"success": true})
	})

	// Get activities for a user
	app.Get("/api/activities/:userId", func(c *fiber.Ctx) error {
		userID := c.Params("userId")
		limit, _ := strconv.Atoi(c.Query("limit", "10"))
		activities, err := activityService.GetActivities(userID, limit)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch activities",
				"cause": err.Error(),
			})
		}
		return c.JSON(activities)
	})

	// Add a new activity
	app.Post("/api/activities", func(c *fiber.Ctx) error {
		var activity models.Activity
		if err := c.BodyParser(&activity); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if activity.UserID == "" || activity.StateID == "" || activity.Action == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "userId, stateId and action are required",
			})
		}
		if activity.Timestamp.IsZero() {
			activity.Timestamp = time.Now()
		}
		if err := activityService.AddActivity(&activity); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to add activity",
				"cause": err.Error(),
			})
		}
		return c.JSON(activity)
	})
}

// notFound reports whether err is the ORM's missing-record sentinel.
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
