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
)

type ChatController struct {
	Chats *repository.ChatRepo
}

// Create opens a chat between the caller and another participant for a
// carpool. The existing chat is returned when the pair already talked.
func (h *ChatController) Create(c *fiber.Ctx) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	var req dto.CreateChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	carpoolID, err := bson.ObjectIDFromHex(req.CarpoolID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid carpool_id"})
	}
	other, err := bson.ObjectIDFromHex(req.ParticipantID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid participant_id"})
	}
	if other == uid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cannot chat with yourself"})
	}

	participants := []bson.ObjectID{uid, other}
	if existing, err := h.Chats.FindByParticipants(c.Context(), carpoolID, participants); err == nil {
		return c.Status(fiber.StatusOK).JSON(existing)
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	chat := &models.Chat{
		ParticipantIDs: participants,
		CarpoolID:      carpoolID,
		UpdatedAt:      time.Now().UTC(),
	}
	id, err := h.Chats.Insert(c.Context(), chat)
	if err != nil {
		return err
	}
	chat.ID = id
	return c.Status(fiber.StatusCreated).JSON(chat)
}

func (h *ChatController) List(c *fiber.Ctx) error {
	uid, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}
	chats, err := h.Chats.ListByUser(c.Context(), uid)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(chats)
}

func (h *ChatController) SendMessage(c *fiber.Ctx) error {
	uid, chat, status, msg := h.loadParticipantChat(c)
	if chat == nil {
		return c.Status(status).JSON(fiber.Map{"message": msg})
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil || req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "content is required"})
	}

	message := &models.Message{
		ChatID:    chat.ID,
		SenderID:  uid,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}
	id, err := h.Chats.AppendMessage(c.Context(), message)
	if err != nil {
		return err
	}
	message.ID = id
	return c.Status(fiber.StatusCreated).JSON(message)
}

func (h *ChatController) Messages(c *fiber.Ctx) error {
	_, chat, status, msg := h.loadParticipantChat(c)
	if chat == nil {
		return c.Status(status).JSON(fiber.Map{"message": msg})
	}

	messages, err := h.Chats.ListMessages(c.Context(), chat.ID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(messages)
}

// loadParticipantChat resolves :id and enforces that the caller is a
// participant. A nil chat means the response was already decided.
func (h *ChatController) loadParticipantChat(c *fiber.Ctx) (bson.ObjectID, *models.Chat, int, string) {
	uid, err := middleware.UserID(c)
	if err != nil {
		return bson.NilObjectID, nil, fiber.StatusUnauthorized, "Unauthorized"
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return uid, nil, fiber.StatusBadRequest, "invalid chat id"
	}
	chat, err := h.Chats.FindByID(c.Context(), id)
	if err != nil {
		return uid, nil, fiber.StatusNotFound, "chat not found"
	}
	for _, p := range chat.ParticipantIDs {
		if p == uid {
			return uid, chat, fiber.StatusOK, ""
		}
	}
	return uid, nil, fiber.StatusForbidden, "not a participant"
}
