package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shivam222343/doantion-app/schema"
)

func (s *Server) startChat(c *gin.Context) {
	var body struct {
		DonationID string `json:"donation_id"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	donationID, err := primitive.ObjectIDFromHex(body.DonationID)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	chat, err := s.chats.Start(c, requester(c), donationID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, chat)
}

func (s *Server) chatMessages(c *gin.Context) {
	chatID, ok := objectIDParam(c, "chatId")
	if !ok {
		return
	}

	messages, err := s.chats.Messages(c, requester(c), chatID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (s *Server) sendMessage(c *gin.Context) {
	chatID, ok := objectIDParam(c, "chatId")
	if !ok {
		return
	}

	var body struct {
		Content string             `json:"content"`
		Type    schema.MessageType `json:"type"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	message, err := s.chats.Send(c, requester(c), chatID, body.Content, body.Type)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, message)
}
