package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shivam222343/doantion-app/apperr"
	"github.com/shivam222343/doantion-app/realtime"
	"github.com/shivam222343/doantion-app/schema"
	"github.com/shivam222343/doantion-app/store"
)

const (
	chatLogPrefix = "chat"

	// HistoryLimit is the number of messages returned by Messages
	HistoryLimit = 50

	startedMessage = "Chat started"
)

var (
	ErrDonorStartsChat = apperr.New(apperr.InvalidOperation, "you are the donor, wait for a requester to start the chat")
	ErrNotParticipant  = apperr.New(apperr.Forbidden, "you are not a participant of this chat")
	ErrEmptyMessage    = apperr.New(apperr.InvalidInput, "message content is required")
	ErrMessageType     = apperr.New(apperr.InvalidInput, "unknown message type")
)

// RoomPublisher delivers an event to the sessions that joined a room
type RoomPublisher interface {
	PublishToRoom(room string, event string, payload interface{})
}

// Room is the realtime room of a chat
func Room(chatID primitive.ObjectID) string {
	return "chat:" + chatID.Hex()
}

// Service lets a requester talk to the donor of a donation
type Service struct {
	store     store.MongoStore
	publisher RoomPublisher
	metrics   tally.Scope
	now       func() time.Time
}

func NewService(s store.MongoStore, p RoomPublisher, scope tally.Scope) *Service {
	if scope == nil {
		scope = tally.NoopScope
	}
	return &Service{
		store:     s,
		publisher: p,
		metrics:   scope.SubScope("chat"),
		now:       time.Now,
	}
}

// Start returns the chat of the caller on a donation, creating it with the
// donor when there is none yet
func (s *Service) Start(ctx context.Context, callerID, donationID primitive.ObjectID) (*schema.Chat, error) {
	chat, err := s.store.FindChat(ctx, donationID, callerID)
	if err == nil {
		return chat, nil
	}
	if !errors.Is(err, store.ErrChatNotFound) {
		return nil, err
	}

	donation, err := s.store.GetDonation(ctx, donationID)
	if err != nil {
		return nil, err
	}
	if donation.DonorID == callerID {
		return nil, ErrDonorStartsChat
	}

	chat = &schema.Chat{
		ID:            primitive.NewObjectID(),
		Participants:  []primitive.ObjectID{callerID, donation.DonorID},
		DonationID:    donationID,
		LastMessage:   startedMessage,
		LastMessageAt: s.now().UTC(),
	}
	if err := s.store.CreateChat(ctx, chat); err != nil {
		return nil, err
	}

	s.metrics.Counter("started").Inc(1)
	log.WithFields(log.Fields{
		"prefix":      chatLogPrefix,
		"chat_id":     chat.ID.Hex(),
		"donation_id": donationID.Hex(),
	}).Debug("chat started")

	return chat, nil
}

// Member returns a chat if the caller takes part in it
func (s *Service) Member(ctx context.Context, callerID, chatID primitive.ObjectID) (*schema.Chat, error) {
	chat, err := s.store.GetChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !chat.HasParticipant(callerID) {
		return nil, ErrNotParticipant
	}
	return chat, nil
}

// Messages returns the latest messages of a chat, newest first
func (s *Service) Messages(ctx context.Context, callerID, chatID primitive.ObjectID) ([]schema.Message, error) {
	if _, err := s.Member(ctx, callerID, chatID); err != nil {
		return nil, err
	}
	return s.store.ListMessages(ctx, chatID, HistoryLimit)
}

// Send stores a message and pushes it to the sessions in the chat room
func (s *Service) Send(ctx context.Context, callerID, chatID primitive.ObjectID, content string, kind schema.MessageType) (*schema.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	switch kind {
	case "":
		kind = schema.MessageText
	case schema.MessageText, schema.MessageImage:
	default:
		return nil, ErrMessageType
	}

	if _, err := s.Member(ctx, callerID, chatID); err != nil {
		return nil, err
	}

	message := &schema.Message{
		ID:        primitive.NewObjectID(),
		ChatID:    chatID,
		SenderID:  callerID,
		Content:   content,
		Type:      kind,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.AddMessage(ctx, message); err != nil {
		return nil, err
	}

	s.metrics.Counter("message.sent").Inc(1)
	s.publisher.PublishToRoom(Room(chatID), realtime.EventChatMessage, message)

	return message, nil
}
