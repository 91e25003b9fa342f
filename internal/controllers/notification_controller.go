package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"carpool-backend/internal/middleware"
	"carpool-backend/internal/repository"
)

type NotificationController struct {
	Notifications *repository.NotificationRepo
}

func (h *NotificationController) List(c *fiber.Ctx) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}
	notifications, err := h.Notifications.ListByUser(c.Context(), uid)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(notifications)
}

func (h *NotificationController) MarkRead(c *fiber.Ctx) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid notification id"})
	}

	ok, err := h.Notifications.MarkRead(c.Context(), id, uid)
	if err != nil {
		return err
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "notification not found"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "marked as read"})
}
