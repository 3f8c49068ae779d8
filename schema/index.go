package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexUserCollection())
	panicIfError(m.IndexDonationCollection())
	panicIfError(m.IndexDonationRequestCollection())
	panicIfError(m.IndexNotificationCollection())
	panicIfError(m.IndexChatCollection())
	panicIfError(m.IndexMessageCollection())
}

func (m *MongoDBIndexer) IndexUserCollection() error {
	return m.createIndex(UserCollection, mongo.IndexModel{
		Keys: bson.M{
			"points": -1,
		},
	})
}

func (m *MongoDBIndexer) IndexDonationCollection() error {
	if err := m.createIndex(DonationCollection, mongo.IndexModel{
		Keys: bson.M{
			"pickup_location": "2dsphere",
		},
	}); err != nil {
		return err
	}

	return m.createIndex(DonationCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "donor_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
}

// IndexDonationRequestCollection makes (donation, requester) unique so that
// concurrent duplicate requests are rejected by the database
func (m *MongoDBIndexer) IndexDonationRequestCollection() error {
	if err := m.createIndex(DonationRequestCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "donation_id", Value: 1},
			{Key: "requester_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	if err := m.createIndex(DonationRequestCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "donor_id", Value: 1},
			{Key: "status", Value: 1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(DonationRequestCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "requester_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
}

func (m *MongoDBIndexer) IndexNotificationCollection() error {
	if err := m.createIndex(NotificationCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(NotificationCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "read", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexChatCollection() error {
	return m.createIndex(ChatCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "donation_id", Value: 1},
			{Key: "participants", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexMessageCollection() error {
	return m.createIndex(MessageCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "chat_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
}
