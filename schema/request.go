package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DonationRequestCollection = "donation_requests"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

// DonationRequest - one requester's bid on a donation
type DonationRequest struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	DonationID  primitive.ObjectID `bson:"donation_id" json:"donation_id"`
	RequesterID primitive.ObjectID `bson:"requester_id" json:"requester_id"`
	DonorID     primitive.ObjectID `bson:"donor_id" json:"donor_id"`
	Status      RequestStatus      `bson:"status" json:"status"`
	Message     string             `bson:"message" json:"message"`
	ThanksSent  bool               `bson:"thanks_sent" json:"thanks_sent"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// Arbitration is the outcome of accepting a request
type Arbitration struct {
	Request  DonationRequest `json:"request"`
	Donation Donation        `json:"donation"`
	Rejected int64           `json:"rejected"`
}
