package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"carpool-backend/internal/models"
	"carpool-backend/internal/repository"
)

// Notifier decouples the write paths that raise notifications from the
// notifications collection.
type Notifier interface {
	Push(ctx context.Context, userID bson.ObjectID, typ models.NotificationType, message string, ref models.Ref) error
}

type NotificationSender struct {
	Repo *repository.NotificationRepo
}

func (n *NotificationSender) Push(ctx context.Context, userID bson.ObjectID, typ models.NotificationType, message string, ref models.Ref) error {
	_, err := n.Repo.Insert(ctx, &models.Notification{
		UserID:        userID,
		Message:       message,
		Type:          typ,
		RelatedEntity: ref,
		CreatedAt:     time.Now().UTC(),
	})
	return err
}
