package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"carpool-backend/dto"
	"carpool-backend/internal/middleware"
	"carpool-backend/internal/services"
)

type PaymentController struct {
	Service *services.PaymentService
}

func (h *PaymentController) Create(c *fiber.Ctx) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if req.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "amount must be positive"})
	}
	carpoolID, err := bson.ObjectIDFromHex(req.CarpoolID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid carpool_id"})
	}
	var requestID *bson.ObjectID
	if req.RideRequestID != "" {
		rid, err := bson.ObjectIDFromHex(req.RideRequestID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid ride_request_id"})
		}
		requestID = &rid
	}

	payment, err := h.Service.Create(c.Context(), uid, carpoolID, requestID, req.Amount, req.Currency)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

func (h *PaymentController) List(c *fiber.Ctx) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}
	payments, err := h.Service.List(c.Context(), uid)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(payments)
}

func (h *PaymentController) Refund(c *fiber.Ctx) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payment id"})
	}

	payment, err := h.Service.Refund(c.Context(), id, uid)
	switch {
	case err == nil:
		return c.Status(fiber.StatusOK).JSON(payment)
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "payment not found"})
	case errors.Is(err, services.ErrInvalidState):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	default:
		return err
	}
}
