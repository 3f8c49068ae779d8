package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ChatCollection    = "chats"
	MessageCollection = "messages"
)

type MessageType string

const (
	MessageText  MessageType = "text"
	MessageImage MessageType = "image"
)

// Chat - a conversation between a requester and the donor of a donation
type Chat struct {
	ID            primitive.ObjectID   `bson:"_id" json:"id"`
	Participants  []primitive.ObjectID `bson:"participants" json:"participants"`
	DonationID    primitive.ObjectID   `bson:"donation_id" json:"donation_id"`
	LastMessage   string               `bson:"last_message" json:"last_message"`
	LastMessageAt time.Time            `bson:"last_message_at" json:"last_message_at"`
}

// HasParticipant reports whether a user takes part in the chat
func (c *Chat) HasParticipant(userID primitive.ObjectID) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// Message - one message of a chat
type Message struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	ChatID    primitive.ObjectID `bson:"chat_id" json:"chat_id"`
	SenderID  primitive.ObjectID `bson:"sender_id" json:"sender_id"`
	Content   string             `bson:"content" json:"content"`
	Type      MessageType        `bson:"type" json:"type"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
