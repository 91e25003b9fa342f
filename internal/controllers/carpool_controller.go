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
	"carpool-backend/observability"
)

type CarpoolController struct {
	Carpools *repository.CarpoolRepo
	Requests *repository.RequestRepo
	Service  *services.CarpoolService
}

func (h *CarpoolController) Create(c *fiber.Ctx) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	var req dto.CreateCarpoolRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if req.StartLocation == "" || req.EndLocation == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "start_location and end_location are required"})
	}
	if req.AvailableSeats < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "available_seats must be at least 1"})
	}
	if req.Price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "price cannot be negative"})
	}

	now := time.Now().UTC()
	cp := &models.Carpool{
		DriverID:       uid,
		StartLocation:  req.StartLocation,
		EndLocation:    req.EndLocation,
		DepartureTime:  req.DepartureTime,
		AvailableSeats: req.AvailableSeats,
		Price:          req.Price,
		Status:         models.CarpoolActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	id, err := h.Carpools.Insert(c.Context(), cp)
	if err != nil {
		return err
	}
	cp.ID = id
	observability.CarpoolsPublished.Inc()

	return c.Status(fiber.StatusCreated).JSON(cp)
}

func (h *CarpoolController) List(c *fiber.Ctx) error {
	var day time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "date must be YYYY-MM-DD"})
		}
		day = parsed
	}
	carpools, err := h.Carpools.ListAvailable(c.Context(), c.Query("from"), c.Query("to"), day)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(carpools)
}

func (h *CarpoolController) Get(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid carpool id"})
	}
	cp, err := h.Carpools.FindByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "carpool not found"})
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(cp)
}

// Mine feeds the polling client: rides the caller drives plus rides they
// joined.
func (h *CarpoolController) Mine(c *fiber.Ctx) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	requests, err := h.Requests.ListByRider(c.Context(), uid)
	if err != nil {
		return err
	}
	joined := []bson.ObjectID{}
	for _, r := range requests {
		if r.Status == models.RequestAccepted {
			joined = append(joined, r.CarpoolID)
		}
	}

	carpools, err := h.Carpools.ListForUser(c.Context(), uid, joined)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(carpools)
}

func (h *CarpoolController) Join(c *fiber.Ctx) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid carpool id"})
	}

	req, err := h.Service.Join(c.Context(), id, uid)
	switch {
	case err == nil:
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"request": req})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "carpool not found"})
	case errors.Is(err, services.ErrOwnRide):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, services.ErrRideClosed), errors.Is(err, services.ErrAlreadyJoined):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, services.ErrRideFull):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	default:
		return err
	}
}

func (h *CarpoolController) Cancel(c *fiber.Ctx) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid carpool id"})
	}

	cp, err := h.Service.Cancel(c.Context(), id, uid)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "carpool not found"})
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(cp)
}
