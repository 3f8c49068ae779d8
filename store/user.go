package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shivam222343/doantion-app/schema"
)

// Reputation - the points and badges of users
type Reputation interface {
	GetUser(ctx context.Context, id primitive.ObjectID) (*schema.User, error)
	IncrementPoints(ctx context.Context, id primitive.ObjectID, delta int64) (*schema.User, error)
	UpdateReputation(ctx context.Context, user *schema.User) error
	Leaderboard(ctx context.Context, page, limit int64) ([]schema.User, int64, error)
}

// Presence - where live users are
type Presence interface {
	UpdateUserLocation(ctx context.Context, id primitive.ObjectID, loc schema.Location, at time.Time) error
}

// UpdateUserLocation records the last reported position of a user
func (m *mongoDB) UpdateUserLocation(ctx context.Context, id primitive.ObjectID, loc schema.Location, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.UserCollection).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"location":            schema.NewGeoJSONPoint(loc),
			"location_updated_at": at,
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (m *mongoDB) GetUser(ctx context.Context, id primitive.ObjectID) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var user schema.User
	if err := m.collection(schema.UserCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// IncrementPoints atomically adds delta to the points of a user and returns
// the document after the increment. The version is bumped so that pending
// reputation writes based on an older snapshot fail.
func (m *mongoDB) IncrementPoints(ctx context.Context, id primitive.ObjectID, delta int64) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var user schema.User
	err := m.collection(schema.UserCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{
			"points":  delta,
			"version": 1,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("increment user points")
		return nil, err
	}

	return &user, nil
}

// UpdateReputation writes badges, pending badges and level of a user only if
// the stored version still equals user.Version. On success user.Version is
// advanced, otherwise ErrVersionConflict is returned.
func (m *mongoDB) UpdateReputation(ctx context.Context, user *schema.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	badges := user.Badges
	if badges == nil {
		badges = []schema.Badge{}
	}
	pending := user.PendingBadges
	if pending == nil {
		pending = []schema.Badge{}
	}

	c := m.collection(schema.UserCollection)
	result, err := c.UpdateOne(ctx,
		bson.M{"_id": user.ID, "version": user.Version},
		bson.M{
			"$set": bson.M{
				"badges":         badges,
				"pending_badges": pending,
				"level":          user.Level,
			},
			"$inc": bson.M{"version": 1},
		},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return missingOr(ctx, c, user.ID, ErrUserNotFound, ErrVersionConflict)
	}

	user.Version++
	return nil
}

// Leaderboard returns users with points, highest first, along with the total
// number of ranked users
func (m *mongoDB) Leaderboard(ctx context.Context, page, limit int64) ([]schema.User, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := bson.M{"points": bson.M{"$gt": 0}}
	c := m.collection(schema.UserCollection)

	total, err := c.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "points", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit).
		SetProjection(bson.M{"email": 0, "phone": 0})

	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}

	users := make([]schema.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
