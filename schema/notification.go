package schema

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	NotificationCollection = "notifications"
)

type NotificationType string

const (
	NotificationDonationRequest   NotificationType = "donation_request"
	NotificationDonationAccepted  NotificationType = "donation_accepted"
	NotificationDonationRejected  NotificationType = "donation_rejected"
	NotificationSayThanks         NotificationType = "say_thanks"
	NotificationDonationCompleted NotificationType = "donation_completed"
)

// NotificationPayload is the event specific data of a notification.
// Every notification type has exactly one payload shape.
type NotificationPayload interface {
	NotificationType() NotificationType
}

type DonationRequestPayload struct {
	DonationID    primitive.ObjectID `bson:"donation_id" json:"donation_id"`
	RequestID     primitive.ObjectID `bson:"request_id" json:"request_id"`
	RequesterID   primitive.ObjectID `bson:"requester_id" json:"requester_id"`
	RequesterName string             `bson:"requester_name" json:"requester_name"`
	DonationTitle string             `bson:"donation_title" json:"donation_title"`
	Category      string             `bson:"category" json:"category"`
}

func (DonationRequestPayload) NotificationType() NotificationType {
	return NotificationDonationRequest
}

type DonationAcceptedPayload struct {
	DonationID    primitive.ObjectID `bson:"donation_id" json:"donation_id"`
	RequestID     primitive.ObjectID `bson:"request_id" json:"request_id"`
	DonationTitle string             `bson:"donation_title" json:"donation_title"`
}

func (DonationAcceptedPayload) NotificationType() NotificationType {
	return NotificationDonationAccepted
}

type DonationRejectedPayload struct {
	DonationID    primitive.ObjectID `bson:"donation_id" json:"donation_id"`
	RequestID     primitive.ObjectID `bson:"request_id" json:"request_id"`
	DonationTitle string             `bson:"donation_title" json:"donation_title"`
	Reason        string             `bson:"reason,omitempty" json:"reason,omitempty"`
}

func (DonationRejectedPayload) NotificationType() NotificationType {
	return NotificationDonationRejected
}

// SayThanksPayload carries the index of the thank-you phrase picked from the pool
type SayThanksPayload struct {
	DonationID    primitive.ObjectID `bson:"donation_id" json:"donation_id"`
	RequestID     primitive.ObjectID `bson:"request_id" json:"request_id"`
	SenderName    string             `bson:"sender_name" json:"sender_name"`
	DonorName     string             `bson:"donor_name" json:"donor_name"`
	DonationTitle string             `bson:"donation_title" json:"donation_title"`
	Phrase        int                `bson:"phrase" json:"phrase"`
}

func (SayThanksPayload) NotificationType() NotificationType {
	return NotificationSayThanks
}

type DonationCompletedPayload struct {
	DonationID    primitive.ObjectID `bson:"donation_id" json:"donation_id"`
	ReceiverID    primitive.ObjectID `bson:"receiver_id" json:"receiver_id"`
	DonationTitle string             `bson:"donation_title" json:"donation_title"`
	Points        int64              `bson:"points" json:"points"`
}

func (DonationCompletedPayload) NotificationType() NotificationType {
	return NotificationDonationCompleted
}

// Notification - durable record of an event relevant to one user
type Notification struct {
	ID        primitive.ObjectID  `json:"id"`
	UserID    primitive.ObjectID  `json:"user_id"`
	Type      NotificationType    `json:"type"`
	Title     string              `json:"title"`
	Message   string              `json:"message"`
	Data      NotificationPayload `json:"data"`
	Read      bool                `json:"read"`
	CreatedAt time.Time           `json:"created_at"`
}

type notificationDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Type      NotificationType   `bson:"type"`
	Title     string             `bson:"title"`
	Message   string             `bson:"message"`
	Data      interface{}        `bson:"data"`
	Read      bool               `bson:"read"`
	CreatedAt time.Time          `bson:"created_at"`
}

type rawNotificationDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Type      NotificationType   `bson:"type"`
	Title     string             `bson:"title"`
	Message   string             `bson:"message"`
	Data      bson.RawValue      `bson:"data"`
	Read      bool               `bson:"read"`
	CreatedAt time.Time          `bson:"created_at"`
}

// MarshalBSON stores the payload as a sub document next to its type
func (n Notification) MarshalBSON() ([]byte, error) {
	return bson.Marshal(notificationDocument{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Data:      n.Data,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	})
}

// UnmarshalBSON picks the payload shape from the stored type
func (n *Notification) UnmarshalBSON(data []byte) error {
	var doc rawNotificationDocument
	if err := bson.Unmarshal(data, &doc); err != nil {
		return err
	}

	payload, err := decodeNotificationPayload(doc.Type, doc.Data)
	if err != nil {
		return err
	}

	*n = Notification{
		ID:        doc.ID,
		UserID:    doc.UserID,
		Type:      doc.Type,
		Title:     doc.Title,
		Message:   doc.Message,
		Data:      payload,
		Read:      doc.Read,
		CreatedAt: doc.CreatedAt,
	}
	return nil
}

func decodeNotificationPayload(t NotificationType, raw bson.RawValue) (NotificationPayload, error) {
	if raw.Type == 0 || raw.Type == bsontype.Null {
		return nil, nil
	}

	switch t {
	case NotificationDonationRequest:
		var p DonationRequestPayload
		err := raw.Unmarshal(&p)
		return p, err
	case NotificationDonationAccepted:
		var p DonationAcceptedPayload
		err := raw.Unmarshal(&p)
		return p, err
	case NotificationDonationRejected:
		var p DonationRejectedPayload
		err := raw.Unmarshal(&p)
		return p, err
	case NotificationSayThanks:
		var p SayThanksPayload
		err := raw.Unmarshal(&p)
		return p, err
	case NotificationDonationCompleted:
		var p DonationCompletedPayload
		err := raw.Unmarshal(&p)
		return p, err
	}

	return nil, fmt.Errorf("unknown notification type: %s", t)
}
