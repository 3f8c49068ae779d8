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

type DonationRequest interface {
	CreateRequest(ctx context.Context, request *schema.DonationRequest) error
	GetRequest(ctx context.Context, id primitive.ObjectID) (*schema.DonationRequest, error)
	HasRequested(ctx context.Context, donationID, requesterID primitive.ObjectID) (bool, error)
	ListRequestsByRequester(ctx context.Context, requesterID primitive.ObjectID) ([]schema.DonationRequest, error)
	ListRequestsByDonor(ctx context.Context, donorID primitive.ObjectID, status schema.RequestStatus) ([]schema.DonationRequest, error)
	AcceptRequest(ctx context.Context, id primitive.ObjectID) (*schema.Arbitration, error)
	RejectRequest(ctx context.Context, id primitive.ObjectID) (*schema.DonationRequest, error)
	MarkThanksSent(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// CreateRequest inserts a pending request. A second request of the same
// requester on the same donation is refused by the unique index.
func (m *mongoDB) CreateRequest(ctx context.Context, request *schema.DonationRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if request.ID.IsZero() {
		request.ID = primitive.NewObjectID()
	}

	if _, err := m.collection(schema.DonationRequestCollection).InsertOne(ctx, request); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateRequest
		}
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("insert donation request")
		return err
	}

	return nil
}

func (m *mongoDB) GetRequest(ctx context.Context, id primitive.ObjectID) (*schema.DonationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var request schema.DonationRequest
	if err := m.collection(schema.DonationRequestCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// HasRequested reports whether the requester already holds a request on the donation
func (m *mongoDB) HasRequested(ctx context.Context, donationID, requesterID primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	count, err := m.collection(schema.DonationRequestCollection).CountDocuments(ctx, bson.M{
		"donation_id":  donationID,
		"requester_id": requesterID,
	})
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (m *mongoDB) ListRequestsByRequester(ctx context.Context, requesterID primitive.ObjectID) ([]schema.DonationRequest, error) {
	return m.listRequests(ctx, bson.M{"requester_id": requesterID})
}

// ListRequestsByDonor lists the requests a donor received. An empty status
// returns every request.
func (m *mongoDB) ListRequestsByDonor(ctx context.Context, donorID primitive.ObjectID, status schema.RequestStatus) ([]schema.DonationRequest, error) {
	query := bson.M{"donor_id": donorID}
	if status != "" {
		query["status"] = status
	}
	return m.listRequests(ctx, query)
}

func (m *mongoDB) listRequests(ctx context.Context, query bson.M) ([]schema.DonationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.DonationRequestCollection).Find(ctx, query,
		options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}

	requests := make([]schema.DonationRequest, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// AcceptRequest accepts a pending request, rejects its pending siblings and
// moves the donation to in-progress in one transaction. Every write is
// conditional so that of two concurrent accepts on the same donation at most
// one commits; the loser gets ErrRequestResolved or ErrDonationResolved.
func (m *mongoDB) AcceptRequest(ctx context.Context, id primitive.ObjectID) (*schema.Arbitration, error) {
	ctx, cancel := context.WithTimeout(ctx, txnTimeout)
	defer cancel()

	session, err := m.client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	requests := m.collection(schema.DonationRequestCollection)
	donations := m.collection(schema.DonationCollection)
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var arbitration schema.Arbitration

		err := requests.FindOneAndUpdate(sc,
			bson.M{"_id": id, "status": schema.RequestPending},
			bson.M{"$set": bson.M{"status": schema.RequestAccepted}},
			after,
		).Decode(&arbitration.Request)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, missingOr(sc, requests, id, ErrRequestNotFound, ErrRequestResolved)
			}
			return nil, err
		}

		err = donations.FindOneAndUpdate(sc,
			bson.M{
				"_id":                 arbitration.Request.DonationID,
				"status":              schema.DonationPending,
				"accepted_request_id": nil,
			},
			bson.M{"$set": bson.M{
				"status":              schema.DonationInProgress,
				"accepted_request_id": arbitration.Request.ID,
				"receiver_id":         arbitration.Request.RequesterID,
			}},
			after,
		).Decode(&arbitration.Donation)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, missingOr(sc, donations, arbitration.Request.DonationID, ErrDonationNotFound, ErrDonationResolved)
			}
			return nil, err
		}

		rejected, err := requests.UpdateMany(sc,
			bson.M{
				"donation_id": arbitration.Request.DonationID,
				"_id":         bson.M{"$ne": arbitration.Request.ID},
				"status":      schema.RequestPending,
			},
			bson.M{"$set": bson.M{"status": schema.RequestRejected}},
		)
		if err != nil {
			return nil, err
		}
		arbitration.Rejected = rejected.ModifiedCount

		return &arbitration, nil
	})
	if err != nil {
		return nil, err
	}

	arbitration := result.(*schema.Arbitration)
	log.WithFields(log.Fields{
		"prefix":      mongoLogPrefix,
		"request_id":  id.Hex(),
		"donation_id": arbitration.Donation.ID.Hex(),
		"rejected":    arbitration.Rejected,
	}).Debug("request accepted")

	return arbitration, nil
}

// RejectRequest moves a pending request to rejected
func (m *mongoDB) RejectRequest(ctx context.Context, id primitive.ObjectID) (*schema.DonationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.collection(schema.DonationRequestCollection)

	var request schema.DonationRequest
	err := c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": schema.RequestPending},
		bson.M{"$set": bson.M{"status": schema.RequestRejected}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, missingOr(ctx, c, id, ErrRequestNotFound, ErrRequestResolved)
		}
		return nil, err
	}

	return &request, nil
}

// MarkThanksSent sets thanks_sent on an accepted request. The returned flag is
// false when the thanks had already been sent.
func (m *mongoDB) MarkThanksSent(ctx context.Context, id primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.collection(schema.DonationRequestCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{
			"_id":         id,
			"status":      schema.RequestAccepted,
			"thanks_sent": false,
		},
		bson.M{"$set": bson.M{"thanks_sent": true}},
	)
	if err != nil {
		return false, err
	}

	if result.MatchedCount == 0 {
		count, err := c.CountDocuments(ctx, bson.M{"_id": id, "status": schema.RequestAccepted})
		if err != nil {
			return false, err
		}
		if count == 0 {
			return false, missingOr(ctx, c, id, ErrRequestNotFound, ErrRequestResolved)
		}
		return false, nil
	}

	return true, nil
}
