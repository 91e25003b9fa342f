package middleware

import (
	"github.com/gofiber/fiber/v2"

	"carpool-backend/internal/repository"
)

// RequireAdmin must sit behind RequireAuth. It loads the caller and rejects
// non-administrators.
func RequireAdmin(users *repository.UserRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
		}
		user, err := users.FindByID(c.Context(), uid)
		if err != nil || !user.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Admin only"})
		}
		return c.Next()
	}
}
