package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shivam222343/doantion-app/schema"
)

type Chat interface {
	FindChat(ctx context.Context, donationID, userID primitive.ObjectID) (*schema.Chat, error)
	GetChat(ctx context.Context, id primitive.ObjectID) (*schema.Chat, error)
	CreateChat(ctx context.Context, chat *schema.Chat) error
	AddMessage(ctx context.Context, message *schema.Message) error
	ListMessages(ctx context.Context, chatID primitive.ObjectID, limit int64) ([]schema.Message, error)
}

// FindChat returns the chat on a donation a user takes part in
func (m *mongoDB) FindChat(ctx context.Context, donationID, userID primitive.ObjectID) (*schema.Chat, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return m.findChat(ctx, bson.M{"donation_id": donationID, "participants": userID})
}

func (m *mongoDB) GetChat(ctx context.Context, id primitive.ObjectID) (*schema.Chat, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return m.findChat(ctx, bson.M{"_id": id})
}

func (m *mongoDB) findChat(ctx context.Context, query bson.M) (*schema.Chat, error) {
	var chat schema.Chat
	if err := m.collection(schema.ChatCollection).FindOne(ctx, query).Decode(&chat); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrChatNotFound
		}
		return nil, err
	}

	return &chat, nil
}

// CreateChat inserts a chat. An empty ID is generated.
func (m *mongoDB) CreateChat(ctx context.Context, chat *schema.Chat) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if chat.ID.IsZero() {
		chat.ID = primitive.NewObjectID()
	}

	_, err := m.collection(schema.ChatCollection).InsertOne(ctx, chat)
	return err
}

// AddMessage stores a message and makes it the last message of its chat
func (m *mongoDB) AddMessage(ctx context.Context, message *schema.Message) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if message.ID.IsZero() {
		message.ID = primitive.NewObjectID()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	result, err := m.collection(schema.ChatCollection).UpdateOne(ctx,
		bson.M{"_id": message.ChatID},
		bson.M{"$set": bson.M{
			"last_message":    message.Content,
			"last_message_at": message.CreatedAt,
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrChatNotFound
	}

	_, err = m.collection(schema.MessageCollection).InsertOne(ctx, message)
	return err
}

// ListMessages returns the latest messages of a chat, newest first
func (m *mongoDB) ListMessages(ctx context.Context, chatID primitive.ObjectID, limit int64) ([]schema.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.MessageCollection).Find(ctx,
		bson.M{"chat_id": chatID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}

	messages := make([]schema.Message, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}
