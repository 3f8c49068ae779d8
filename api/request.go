package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shivam222343/doantion-app/schema"
)

func (s *Server) createRequest(c *gin.Context) {
	var body struct {
		DonationID string `json:"donation_id"`
		Message    string `json:"message"`
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

	request, err := s.requests.CreateRequest(c, donationID, requester(c), body.Message)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"request": request,
	})
}

func (s *Server) myRequests(c *gin.Context) {
	requests, err := s.requests.MyRequests(c, requester(c))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, requests)
}

func (s *Server) receivedRequests(c *gin.Context) {
	status := schema.RequestStatus(c.Query("status"))
	switch status {
	case "", schema.RequestPending, schema.RequestAccepted, schema.RequestRejected:
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	requests, err := s.requests.Received(c, requester(c), status)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, requests)
}

func (s *Server) getRequest(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	request, err := s.requests.GetRequest(c, id, requester(c))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, request)
}

func (s *Server) acceptRequest(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	arbitration, err := s.requests.AcceptRequest(c, id, requester(c))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"request":  arbitration.Request,
		"donation": arbitration.Donation,
		"rejected": arbitration.Rejected,
	})
}

func (s *Server) rejectRequest(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	// the reason is optional, so is the body
	if c.Request.ContentLength > 0 {
		if err := c.BindJSON(&body); err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
			return
		}
	}

	request, err := s.requests.RejectRequest(c, id, requester(c), body.Reason)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"request": request,
	})
}

func (s *Server) sendThanks(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	request, err := s.requests.SendThanks(c, id, requester(c))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thanks sent!",
		"request": request,
	})
}
