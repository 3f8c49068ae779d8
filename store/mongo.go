package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shivam222343/doantion-app/apperr"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
	txnTimeout     = 15 * time.Second
)

var (
	ErrDonationNotFound     = apperr.New(apperr.NotFound, "donation not found")
	ErrRequestNotFound      = apperr.New(apperr.NotFound, "donation request not found")
	ErrUserNotFound         = apperr.New(apperr.NotFound, "user not found")
	ErrNotificationNotFound = apperr.New(apperr.NotFound, "notification not found")
	ErrChatNotFound         = apperr.New(apperr.NotFound, "chat not found")
	ErrDuplicateRequest     = apperr.New(apperr.Conflict, "you have already requested this donation")
	ErrRequestResolved      = apperr.New(apperr.Conflict, "the request has already been resolved")
	ErrDonationResolved     = apperr.New(apperr.Conflict, "the donation is no longer in the expected state")
	ErrVersionConflict      = apperr.New(apperr.Conflict, "user reputation has been modified concurrently")
)

// MongoStore - interface for mongodb operations
type MongoStore interface {
	Donation
	DonationRequest
	Reputation
	Presence
	Notification
	Chat
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// Ping - ping mongo db
func (m mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewMongoStore - return mongo db operations
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

func (m *mongoDB) collection(name string) *mongo.Collection {
	return m.client.Database(m.database).Collection(name)
}

// missingOr tells apart a document that does not exist from one that did not
// match the rest of a conditional filter
func missingOr(ctx context.Context, c *mongo.Collection, id primitive.ObjectID, missing, mismatched error) error {
	count, err := c.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if count == 0 {
		return missing
	}
	return mismatched
}
