package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	jwtrequest "github.com/dgrijalva/jwt-go/request"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shivam222343/doantion-app/chat"
	"github.com/shivam222343/doantion-app/realtime"
	"github.com/shivam222343/doantion-app/schema"
)

const socketEventTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// websocket upgrades an authenticated client into a live session. Browsers
// can not set headers on a websocket handshake so the token comes as the
// `token` query parameter.
func (s *Server) websocket(c *gin.Context) {
	userID, err := s.parseToken(c.Request, jwtrequest.ArgumentExtractor{"token"})
	if err != nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader already answered the client
		log.WithField("user_id", userID.Hex()).Warn(err)
		return
	}

	client := s.hub.Serve(conn, userID.Hex())
	log.WithFields(logrus.Fields{
		"user_id":   userID.Hex(),
		"client_id": client.ID(),
	}).Info("live session opened")
}

// userMoved is broadcast when a live user reports a new position
type userMoved struct {
	UserID   string          `json:"userId"`
	Location schema.Location `json:"location"`
}

func (s *Server) handleSocketEvents() {
	s.hub.Handle(realtime.EventChatJoin, s.joinChat)
	s.hub.Handle(realtime.EventUserLocationUpdate, s.updateLocation)
}

// joinChat subscribes a session to the messages of a chat it takes part in.
// The payload is the chat id.
func (s *Server) joinChat(client *realtime.Client, data json.RawMessage) {
	logger := log.WithFields(logrus.Fields{
		"user_id":   client.UserID(),
		"client_id": client.ID(),
	})

	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		logger.WithError(err).Warn("invalid chat join payload")
		return
	}

	chatID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logger.WithError(err).Warn("invalid chat id")
		return
	}

	userID, err := primitive.ObjectIDFromHex(client.UserID())
	if err != nil {
		logger.WithError(err).Error("invalid session user")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), socketEventTimeout)
	defer cancel()

	if _, err := s.chats.Member(ctx, userID, chatID); err != nil {
		logger.WithField("chat_id", id).WithError(err).Warn("refuse to join chat")
		return
	}

	s.hub.Join(client, chat.Room(chatID))
	logger.WithField("chat_id", id).Debug("joined chat")
}

// updateLocation records the position reported by a session and tells the
// other live sessions
func (s *Server) updateLocation(client *realtime.Client, data json.RawMessage) {
	logger := log.WithFields(logrus.Fields{
		"user_id":   client.UserID(),
		"client_id": client.ID(),
	})

	var loc schema.Location
	if err := json.Unmarshal(data, &loc); err != nil || !loc.Valid() {
		logger.WithField("data", string(data)).Warn("invalid location update")
		return
	}

	userID, err := primitive.ObjectIDFromHex(client.UserID())
	if err != nil {
		logger.WithError(err).Error("invalid session user")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), socketEventTimeout)
	defer cancel()

	if err := s.store.UpdateUserLocation(ctx, userID, loc, time.Now().UTC()); err != nil {
		logger.WithError(err).Error("update user location")
		return
	}

	s.hub.PublishBroadcastFrom(client, realtime.EventUserMoved, userMoved{
		UserID:   client.UserID(),
		Location: loc,
	})
}
