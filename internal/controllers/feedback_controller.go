package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"carpool-backend/dto"
	"carpool-backend/internal/middleware"
	"carpool-backend/internal/services"
)

type FeedbackController struct {
	Service *services.FeedbackService
}

func (h *FeedbackController) Submit(c *fiber.Ctx) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	var req dto.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	carpoolID, err := bson.ObjectIDFromHex(req.CarpoolID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid carpool_id"})
	}
	givenTo, err := bson.ObjectIDFromHex(req.GivenTo)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid given_to"})
	}

	fb, err := h.Service.Submit(c.Context(), uid, givenTo, carpoolID, req.Rating, req.Comments)
	switch {
	case err == nil:
		return c.Status(fiber.StatusCreated).JSON(fb)
	case errors.Is(err, services.ErrInvalidRating):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, services.ErrDuplicateFeedback):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	default:
		return err
	}
}

// List returns ratings received by ?user=<id>, defaulting to the caller.
func (h *FeedbackController) List(c *fiber.Ctx) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}
	target := uid
	if q := c.Query("user"); q != "" {
		target, err = bson.ObjectIDFromHex(q)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
		}
	}

	ratings, average, err := h.Service.ListFor(c.Context(), target)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(dto.FeedbackList{Ratings: ratings, Average: average})
}
