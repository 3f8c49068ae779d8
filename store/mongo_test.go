package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shivam222343/doantion-app/schema"
)

// transactions need a replica set, e.g.
// DONATION_TEST_MONGO_URI=mongodb://127.0.0.1:27017/?replicaSet=rs0
const testMongoURIEnv = "DONATION_TEST_MONGO_URI"

var (
	locationTaipeiMainStation = schema.Location{Latitude: 25.047950, Longitude: 121.517384}
	locationNangangStation    = schema.Location{Latitude: 25.052616, Longitude: 121.605387}
	locationSinica            = schema.Location{Latitude: 25.042959, Longitude: 121.616002}

	tsMarchFirst = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
)

// mongoTestSuite connects to the test database and drops it before the suite
type mongoTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        MongoStore
}

func (s *mongoTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	if err := s.testDatabase.Drop(context.Background()); err != nil {
		s.T().Fatal(err)
	}

	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
	s.store = NewMongoStore(s.mongoClient, s.testDBName)
}

func (s *mongoTestSuite) TearDownSuite() {
	_ = s.testDatabase.Drop(context.Background())
	_ = s.mongoClient.Disconnect(context.Background())
}

func (s *mongoTestSuite) insertUser(points int64) *schema.User {
	user := &schema.User{
		ID:            primitive.NewObjectID(),
		Name:          "tester",
		Points:        points,
		Level:         1,
		Badges:        []schema.Badge{},
		PendingBadges: []schema.Badge{},
		CreatedAt:     tsMarchFirst,
	}
	_, err := s.testDatabase.Collection(schema.UserCollection).InsertOne(context.Background(), user)
	s.Require().NoError(err)
	return user
}

func (s *mongoTestSuite) insertDonation(donorID primitive.ObjectID, loc schema.Location) *schema.Donation {
	donation := &schema.Donation{
		DonorID:        donorID,
		Title:          "winter jackets",
		Category:       "Clothes",
		Quantity:       "3",
		Status:         schema.DonationPending,
		PickupLocation: schema.NewGeoJSONPoint(loc),
		PickupAddress:  "Zhongzheng District, Taipei",
		CreatedAt:      tsMarchFirst,
	}
	s.Require().NoError(s.store.CreateDonation(context.Background(), donation))
	return donation
}

func (s *mongoTestSuite) insertRequest(donation *schema.Donation, requesterID primitive.ObjectID) *schema.DonationRequest {
	request := &schema.DonationRequest{
		DonationID:  donation.ID,
		RequesterID: requesterID,
		DonorID:     donation.DonorID,
		Status:      schema.RequestPending,
		CreatedAt:   tsMarchFirst,
	}
	s.Require().NoError(s.store.CreateRequest(context.Background(), request))
	return request
}

func runMongoSuite(t *testing.T, dbName string, s suite.TestingSuite, base *mongoTestSuite) {
	uri := os.Getenv(testMongoURIEnv)
	if uri == "" {
		t.Skipf("%s is not set", testMongoURIEnv)
	}
	base.connURI = uri
	base.testDBName = dbName
	suite.Run(t, s)
}
