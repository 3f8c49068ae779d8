package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DonationCollection = "donations"
)

type DonationStatus string

const (
	DonationPending    DonationStatus = "pending"
	DonationInProgress DonationStatus = "in-progress"
	DonationCompleted  DonationStatus = "completed"
	DonationCancelled  DonationStatus = "cancelled"
)

// DefaultDonationCategory is used when a donor does not pick one
const DefaultDonationCategory = "Others"

// Donation - an item offered by a donor
type Donation struct {
	ID                primitive.ObjectID   `bson:"_id" json:"id"`
	DonorID           primitive.ObjectID   `bson:"donor_id" json:"donor_id"`
	Title             string               `bson:"title" json:"title"`
	Category          string               `bson:"category" json:"category"`
	Description       string               `bson:"description" json:"description"`
	Quantity          string               `bson:"quantity" json:"quantity"`
	ImageURL          string               `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Status            DonationStatus       `bson:"status" json:"status"`
	PickupLocation    GeoJSON              `bson:"pickup_location" json:"pickup_location"`
	PickupAddress     string               `bson:"pickup_address" json:"pickup_address"`
	Home              string               `bson:"home,omitempty" json:"home,omitempty"`
	Street            string               `bson:"street,omitempty" json:"street,omitempty"`
	RequestedBy       []primitive.ObjectID `bson:"requested_by" json:"requested_by"`
	AcceptedRequestID *primitive.ObjectID  `bson:"accepted_request_id" json:"accepted_request_id"`
	ReceiverID        *primitive.ObjectID  `bson:"receiver_id" json:"receiver_id"`
	CreatedAt         time.Time            `bson:"created_at" json:"created_at"`
}

// DonationDetails are the donor editable fields of a donation. Empty values
// keep the current value.
type DonationDetails struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Quantity      string `json:"quantity"`
	PickupAddress string `json:"pickup_address"`
}
