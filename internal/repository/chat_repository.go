package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"carpool-backend/internal/models"
)

type ChatRepo struct {
	chats    *mongo.Collection
	messages *mongo.Collection
}

func NewChatRepo(db *mongo.Database) *ChatRepo {
	return &ChatRepo{chats: db.Collection("chats"), messages: db.Collection("messages")}
}

func (r *ChatRepo) Insert(ctx context.Context, chat *models.Chat) (bson.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if chat.ID.IsZero() {
		chat.ID = bson.NewObjectID()
	}
	if _, err := r.chats.InsertOne(ctx, chat); err != nil {
		return bson.NilObjectID, err
	}
	return chat.ID, nil
}

// FindByParticipants returns the existing chat for this carpool and exact
// participant pair, if one was created before.
func (r *ChatRepo) FindByParticipants(ctx context.Context, carpoolID bson.ObjectID, participants []bson.ObjectID) (*models.Chat, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"carpool_id":      carpoolID,
		"participant_ids": bson.M{"$all": participants, "$size": len(participants)},
	}
	var chat models.Chat
	if err := r.chats.FindOne(ctx, filter).Decode(&chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *ChatRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Chat, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var chat models.Chat
	if err := r.chats.FindOne(ctx, bson.M{"_id": id}).Decode(&chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *ChatRepo) ListByUser(ctx context.Context, userID bson.ObjectID) ([]models.Chat, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.chats.Find(ctx, bson.M{"participant_ids": userID}, options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	chats := []models.Chat{}
	if err := cursor.All(ctx, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

// AppendMessage stores the message and refreshes the chat preview in one
// pass. Not transactional; a lost preview update is harmless.
func (r *ChatRepo) AppendMessage(ctx context.Context, msg *models.Message) (bson.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if msg.ID.IsZero() {
		msg.ID = bson.NewObjectID()
	}
	if _, err := r.messages.InsertOne(ctx, msg); err != nil {
		return bson.NilObjectID, err
	}
	_, _ = r.chats.UpdateOne(
		ctx,
		bson.M{"_id": msg.ChatID},
		bson.M{"$set": bson.M{"last_message": msg.Content, "updated_at": time.Now().UTC()}},
	)
	return msg.ID, nil
}

func (r *ChatRepo) ListMessages(ctx context.Context, chatID bson.ObjectID) ([]models.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.messages.Find(ctx, bson.M{"chat_id": chatID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	messages := []models.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
