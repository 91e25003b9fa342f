package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"carpool-backend/dto"
	"carpool-backend/internal/middleware"
	"carpool-backend/internal/repository"
	"carpool-backend/internal/services"
)

type RequestController struct {
	Requests *repository.RequestRepo
	Service  *services.CarpoolService
}

func (h *RequestController) List(c *fiber.Ctx) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}
	requests, err := h.Requests.ListByRider(c.Context(), uid)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(requests)
}

// Update only supports rider-side cancellation.
func (h *RequestController) Update(c *fiber.Ctx) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request id"})
	}

	var body dto.UpdateRequestStatus
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if body.Status != "cancelled" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "only cancellation is supported"})
	}

	req, err := h.Service.CancelRequest(c.Context(), id, uid)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "request not found"})
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(req)
}
