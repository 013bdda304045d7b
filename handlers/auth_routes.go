// handlers/auth_routes.go
package handlers

import (
	"errors"

	"state-tracker-system/middleware"
	"state-tracker-system/models"
	"state-tracker-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, userService *services.UserService) {
	// Registration endpoint — logs the new account straight in
	app.Post("/api/register", func(c *fiber.Ctx) error {
		type Req struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
			FullName string `json:"fullName"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if req.Username == "" || req.Email == "" || req.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "username, email and password are required",
			})
		}

		user, session, err := userService.Register(req.Username, req.Email, req.Password, req.FullName)
		if err != nil {
			if errors.Is(err, services.ErrUsernameTaken) || errors.Is(err, services.ErrEmailTaken) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "registration failed",
			})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"user":         user,
			"sessionToken": session.Token,
		})
	})

	// Login endpoint
	app.Post("/api/login", func(c *fiber.Ctx) error {
		type Req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}

		user, session, err := userService.Login(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "invalid username or password",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "login failed",
			})
		}
		return c.JSON(fiber.Map{
			"user":         user,
			"sessionToken": session.Token,
		})
	})

	// Logout endpoint
	app.Post("/api/logout", middleware.SessionAuth(userService, true), func(c *fiber.Ctx) error {
		token := c.Locals("session_token").(string)
		if err := userService.Logout(token); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "logout failed",
			})
		}
		return c.JSON(fiber.Map{"message": "logged out successfully"})
	})

	// Get current user endpoint
	app.Get("/api/user", middleware.SessionAuth(userService, true), func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		return c.JSON(user)
	})
}
