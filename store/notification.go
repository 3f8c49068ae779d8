package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shivam222343/doantion-app/schema"
)

type Notification interface {
	AddNotification(ctx context.Context, notification *schema.Notification) error
	ListNotifications(ctx context.Context, userID primitive.ObjectID, limit int64) ([]schema.Notification, error)
	CountUnreadNotifications(ctx context.Context, userID primitive.ObjectID) (int64, error)
	MarkNotificationRead(ctx context.Context, userID, id primitive.ObjectID) error
	MarkAllNotificationsRead(ctx context.Context, userID primitive.ObjectID) error
	DeleteNotification(ctx context.Context, userID, id primitive.ObjectID) error
	DeleteAllNotifications(ctx context.Context, userID primitive.ObjectID) error
}

func (m *mongoDB) AddNotification(ctx context.Context, notification *schema.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if notification.ID.IsZero() {
		notification.ID = primitive.NewObjectID()
	}

	_, err := m.collection(schema.NotificationCollection).InsertOne(ctx, notification)
	return err
}

// ListNotifications returns the latest notifications of a user
func (m *mongoDB) ListNotifications(ctx context.Context, userID primitive.ObjectID, limit int64) ([]schema.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := m.collection(schema.NotificationCollection).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}

	notifications := make([]schema.Notification, 0)
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}

	return notifications, nil
}

// CountUnreadNotifications counts the stored unread notifications of a user
func (m *mongoDB) CountUnreadNotifications(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return m.collection(schema.NotificationCollection).CountDocuments(ctx, bson.M{
		"user_id": userID,
		"read":    false,
	})
}

func (m *mongoDB) MarkNotificationRead(ctx context.Context, userID, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.NotificationCollection).UpdateOne(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

func (m *mongoDB) MarkAllNotificationsRead(ctx context.Context, userID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := m.collection(schema.NotificationCollection).UpdateMany(ctx,
		bson.M{"user_id": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	return err
}

func (m *mongoDB) DeleteNotification(ctx context.Context, userID, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.NotificationCollection).DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

func (m *mongoDB) DeleteAllNotifications(ctx context.Context, userID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := m.collection(schema.NotificationCollection).DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
