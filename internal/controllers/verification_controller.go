package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"carpool-backend/dto"
	"carpool-backend/internal/middleware"
	"carpool-backend/internal/models"
	"carpool-backend/internal/repository"
	"carpool-backend/internal/services"
)

type VerificationController struct {
	Verifications *repository.VerificationRepo
	Users         *repository.UserRepo
	Notify        services.Notifier
}

func (h *VerificationController) Submit(c *fiber.Ctx) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	var req dto.SubmitVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if req.DocumentType == "" || req.DocumentRef == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "document_type and document_ref are required"})
	}

	now := time.Now().UTC()
	v := &models.Verification{
		UserID:       uid,
		DocumentType: req.DocumentType,
		DocumentRef:  req.DocumentRef,
		Status:       models.VerificationPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	id, err := h.Verifications.Insert(c.Context(), v)
	if err != nil {
		return err
	}
	v.ID = id
	return c.Status(fiber.StatusCreated).JSON(v)
}

func (h *VerificationController) ListPending(c *fiber.Ctx) error {
	pending, err := h.Verifications.ListPending(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(pending)
}

// Review approves or rejects a pending verification. Approval flips the
// user's is_verified flag and notifies them.
func (h *VerificationController) Review(c *fiber.Ctx) error {
	reviewer, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid verification id"})
	}

	var req dto.ReviewVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	status := models.VerificationStatus(req.Status)
	if status != models.VerificationApproved && status != models.VerificationRejected {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "status must be approved or rejected"})
	}

	v, err := h.Verifications.Review(c.Context(), id, status, reviewer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "pending verification not found"})
		}
		return err
	}

	if status == models.VerificationApproved {
		if _, err := h.Users.Update(c.Context(), v.UserID, bson.M{"is_verified": true}); err != nil {
			return err
		}
	}
	_ = h.Notify.Push(c.Context(), v.UserID, models.NotifyVerification,
		"Your verification was "+string(status),
		models.Ref{Entity: "verification", ID: v.ID})

	return c.Status(fiber.StatusOK).JSON(v)
}
