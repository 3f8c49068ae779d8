package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shivam222343/doantion-app/schema"
)

// DonationFilter narrows donor listings. Zero values do not filter.
type DonationFilter struct {
	Category string
	Status   schema.DonationStatus
	Limit    int64
}

type Donation interface {
	CreateDonation(ctx context.Context, donation *schema.Donation) error
	GetDonation(ctx context.Context, id primitive.ObjectID) (*schema.Donation, error)
	ListDonationsByDonor(ctx context.Context, donorID primitive.ObjectID, filter DonationFilter) ([]schema.Donation, error)
	NearbyDonations(ctx context.Context, loc schema.Location, radius int, excludeDonor primitive.ObjectID) ([]schema.Donation, error)
	UpdateDonationDetails(ctx context.Context, id primitive.ObjectID, details schema.DonationDetails) (*schema.Donation, error)
	DeleteDonation(ctx context.Context, id primitive.ObjectID) error
	AddInterestedParty(ctx context.Context, donationID, userID primitive.ObjectID) error
	CompleteDonation(ctx context.Context, donationID, receiverID primitive.ObjectID) (*schema.Donation, error)
	CancelDonation(ctx context.Context, donationID primitive.ObjectID) (*schema.Donation, error)
	CountDonations(ctx context.Context, donorID primitive.ObjectID, statuses ...schema.DonationStatus) (int64, error)
}

// CreateDonation inserts a new donation. An empty ID is generated.
func (m *mongoDB) CreateDonation(ctx context.Context, donation *schema.Donation) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if donation.ID.IsZero() {
		donation.ID = primitive.NewObjectID()
	}
	if donation.RequestedBy == nil {
		donation.RequestedBy = []primitive.ObjectID{}
	}

	if _, err := m.collection(schema.DonationCollection).InsertOne(ctx, donation); err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("insert donation")
		return err
	}

	return nil
}

// GetDonation finds a donation by id
func (m *mongoDB) GetDonation(ctx context.Context, id primitive.ObjectID) (*schema.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var donation schema.Donation
	if err := m.collection(schema.DonationCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&donation); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}

	return &donation, nil
}

// ListDonationsByDonor lists donations of a donor, newest first
func (m *mongoDB) ListDonationsByDonor(ctx context.Context, donorID primitive.ObjectID, filter DonationFilter) ([]schema.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"donor_id": donorID}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := m.collection(schema.DonationCollection).Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	donations := make([]schema.Donation, 0)
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, err
	}

	return donations, nil
}

// NearbyDonations finds pending donations within radius meters of a
// location, nearest first, leaving out the donations of excludeDonor
func (m *mongoDB) NearbyDonations(ctx context.Context, loc schema.Location, radius int, excludeDonor primitive.ObjectID) ([]schema.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.D{
		{Key: "status", Value: schema.DonationPending},
		{Key: "donor_id", Value: bson.M{"$ne": excludeDonor}},
		distanceQuery("pickup_location", radius, loc),
	}

	cursor, err := m.collection(schema.DonationCollection).Find(ctx, query)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearby donations with error: %s", err)
		return nil, err
	}

	donations := make([]schema.Donation, 0)
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, err
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("nearby donations query gets %d records near long:%v lat:%v",
		len(donations), loc.Longitude, loc.Latitude)

	return donations, nil
}

// UpdateDonationDetails overwrites the non-empty editable fields
func (m *mongoDB) UpdateDonationDetails(ctx context.Context, id primitive.ObjectID, details schema.DonationDetails) (*schema.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if details.Title != "" {
		set["title"] = details.Title
	}
	if details.Description != "" {
		set["description"] = details.Description
	}
	if details.Category != "" {
		set["category"] = details.Category
	}
	if details.Quantity != "" {
		set["quantity"] = details.Quantity
	}
	if details.PickupAddress != "" {
		set["pickup_address"] = details.PickupAddress
	}

	if len(set) == 0 {
		return m.GetDonation(ctx, id)
	}

	var donation schema.Donation
	err := m.collection(schema.DonationCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&donation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}

	return &donation, nil
}

// DeleteDonation removes a donation along with its requests
func (m *mongoDB) DeleteDonation(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.DonationCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrDonationNotFound
	}

	if _, err := m.collection(schema.DonationRequestCollection).DeleteMany(ctx, bson.M{"donation_id": id}); err != nil {
		log.WithFields(log.Fields{
			"prefix":      mongoLogPrefix,
			"donation_id": id.Hex(),
			"error":       err,
		}).Error("delete requests of removed donation")
	}

	return nil
}

// AddInterestedParty appends a requester to the interested parties of a
// pending donation. It writes the donation document, so it conflicts with an
// accept or cancel transaction running at the same time. A donation that is no
// longer pending gives ErrDonationResolved.
func (m *mongoDB) AddInterestedParty(ctx context.Context, donationID, userID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.collection(schema.DonationCollection)
	result, err := c.UpdateOne(ctx,
		bson.M{"_id": donationID, "status": schema.DonationPending},
		bson.M{"$addToSet": bson.M{"requested_by": userID}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return missingOr(ctx, c, donationID, ErrDonationNotFound, ErrDonationResolved)
	}

	return nil
}

// CompleteDonation moves an in-progress donation to completed and records the
// receiver. Only one caller can win, the others get ErrDonationResolved.
func (m *mongoDB) CompleteDonation(ctx context.Context, donationID, receiverID primitive.ObjectID) (*schema.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.collection(schema.DonationCollection)

	var donation schema.Donation
	err := c.FindOneAndUpdate(ctx,
		bson.M{
			"_id":    donationID,
			"status": schema.DonationInProgress,
		},
		bson.M{"$set": bson.M{
			"status":      schema.DonationCompleted,
			"receiver_id": receiverID,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&donation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, missingOr(ctx, c, donationID, ErrDonationNotFound, ErrDonationResolved)
		}
		return nil, err
	}

	return &donation, nil
}

// CancelDonation cancels a pending or in-progress donation in one
// transaction. The accepted request and the receiver are cleared from the
// donation, and every pending or accepted request on it is rejected.
func (m *mongoDB) CancelDonation(ctx context.Context, donationID primitive.ObjectID) (*schema.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, txnTimeout)
	defer cancel()

	session, err := m.client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	donations := m.collection(schema.DonationCollection)
	requests := m.collection(schema.DonationRequestCollection)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var donation schema.Donation
		err := donations.FindOneAndUpdate(sc,
			bson.M{
				"_id":    donationID,
				"status": bson.M{"$in": bson.A{schema.DonationPending, schema.DonationInProgress}},
			},
			bson.M{
				"$set":   bson.M{"status": schema.DonationCancelled},
				"$unset": bson.M{"accepted_request_id": "", "receiver_id": ""},
			},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&donation)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, missingOr(sc, donations, donationID, ErrDonationNotFound, ErrDonationResolved)
			}
			return nil, err
		}

		if _, err := requests.UpdateMany(sc,
			bson.M{
				"donation_id": donationID,
				"status":      bson.M{"$in": bson.A{schema.RequestPending, schema.RequestAccepted}},
			},
			bson.M{"$set": bson.M{"status": schema.RequestRejected}},
		); err != nil {
			return nil, err
		}

		return &donation, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*schema.Donation), nil
}

// CountDonations counts the donations of a donor, optionally only those in
// the given statuses
func (m *mongoDB) CountDonations(ctx context.Context, donorID primitive.ObjectID, statuses ...schema.DonationStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"donor_id": donorID}
	if len(statuses) > 0 {
		query["status"] = bson.M{"$in": statuses}
	}

	return m.collection(schema.DonationCollection).CountDocuments(ctx, query)
}
