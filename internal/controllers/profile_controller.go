package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"carpool-backend/dto"
	"carpool-backend/internal/middleware"
	"carpool-backend/internal/repository"
)

type ProfileController struct {
	Users *repository.UserRepo
}

func (h *ProfileController) Get(c *fiber.Ctx) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}
	user, err := h.Users.FindByID(c.Context(), uid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *ProfileController) Update(c *fiber.Ctx) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	patch := bson.M{}
	if req.Name != "" {
		patch["name"] = req.Name
	}
	if req.Phone != "" {
		patch["phone"] = req.Phone
	}
	if req.IsDriver != nil {
		patch["is_driver"] = *req.IsDriver
	}
	if req.PreferredPaymentMethods != nil {
		patch["preferred_payment_methods"] = req.PreferredPaymentMethods
	}
	if len(patch) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "nothing to update"})
	}

	user, err := h.Users.Update(c.Context(), uid, patch)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *ProfileController) UpdateAvatar(c *fiber.Ctx) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	var req dto.UpdateAvatarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if req.ProfilePicture == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "profile_picture is required"})
	}

	user, err := h.Users.Update(c.Context(), uid, bson.M{"profile_picture": req.ProfilePicture})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"profile_picture": user.ProfilePicture})
}
