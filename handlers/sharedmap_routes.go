// handlers/sharedmap_routes.go
package handlers

import (
	"fmt"

	"state-tracker-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupSharedMapRoutes(app *fiber.App, sharedMapService *services.SharedMapService) {
	// Save a shared map
	app.Post("/api/shared-maps", func(c *fiber.Ctx) error {
		type Req struct {
			UserID    string `json:"userId"`
			ImageData string `json:"imageData"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if req.UserID == "" || req.ImageData == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "userId and imageData are required",
			})
		}

		sharedMap, err := sharedMapService.SaveSharedMap(req.UserID, req.ImageData)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to save shared map",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"shareCode": sharedMap.ShareCode,
			"shareUrl":  fmt.Sprintf("%s/shared/%s", c.BaseURL(), sharedMap.ShareCode),
		})
	})

	// Get a shared map by code
	app.Get("/api/shared-maps/:shareCode", func(c *fiber.Ctx) error {
		sharedMap, err := sharedMapService.GetSharedMapByCode(c.Params("shareCode"))
		if err != nil {
			if notFound(err) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "shared map not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to retrieve shared map",
				"cause": err.Error(),
			})
		}
		return c.JSON(sharedMap)
	})

	// View a shared map — hand off to the frontend with the code attached
	app.Get("/shared/:shareCode", func(c *fiber.Ctx) error {
		return c.Redirect("/?share=" + c.Params("shareCode"))
	})
}
