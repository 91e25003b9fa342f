package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"carpool-backend/internal/middleware"
	"carpool-backend/internal/models"
	"carpool-backend/internal/repository"
)

type PreferencesController struct {
	Preferences *repository.PreferencesRepo
}

func (h *PreferencesController) Get(c *fiber.Ctx) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}
	prefs, err := h.Preferences.FindByUser(c.Context(), uid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "preferences not set"})
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(prefs)
}

func (h *PreferencesController) Put(c *fiber.Ctx) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	var prefs models.UserPreferences
	if err := c.BodyParser(&prefs); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	prefs.UserID = uid
	if prefs.Commute.DepartureLocation.Type == "" {
		prefs.Commute.DepartureLocation.Type = "Point"
	}
	if prefs.Commute.Destination.Type == "" {
		prefs.Commute.Destination.Type = "Point"
	}

	updated, err := h.Preferences.Upsert(c.Context(), &prefs)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(updated)
}
