package gamification

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shivam222343/doantion-app/apperr"
	"github.com/shivam222343/doantion-app/realtime"
	"github.com/shivam222343/doantion-app/schema"
	"github.com/shivam222343/doantion-app/score"
	"github.com/shivam222343/doantion-app/store"
)

const (
	engineLogPrefix = "gamification"

	// maxReputationRetries bounds the optimistic write loop of one user
	maxReputationRetries = 5
)

var ErrTooManyConflicts = apperr.New(apperr.Conflict, "user reputation is busy, please retry")

// PointsEvent is pushed with user:points_updated
type PointsEvent struct {
	Points int64 `json:"points"`
	Level  int   `json:"level"`
}

// BadgesEvent is pushed with user:badges_updated and user:level_up
type BadgesEvent struct {
	Points        int64          `json:"points"`
	Level         int            `json:"level"`
	Badges        []schema.Badge `json:"badges"`
	PendingBadges []schema.Badge `json:"pending_badges"`
	Unlocked      []schema.Badge `json:"unlocked,omitempty"`
}

// Engine applies point awards and badge claims to users
type Engine struct {
	store     store.Reputation
	publisher realtime.Publisher
	metrics   tally.Scope
	now       func() time.Time
}

func NewEngine(s store.Reputation, p realtime.Publisher, scope tally.Scope) *Engine {
	if scope == nil {
		scope = tally.NoopScope
	}

	return &Engine{
		store:     s,
		publisher: p,
		metrics:   scope.SubScope("gamification"),
		now:       time.Now,
	}
}

// AwardPoints adds points to a user and unlocks every badge the new total
// reaches. The increment is atomic in the store, badge unlocks are derived
// from the post increment document and written with a version check.
func (e *Engine) AwardPoints(ctx context.Context, userID primitive.ObjectID, points int64) (*schema.User, error) {
	if points <= 0 {
		return nil, apperr.New(apperr.InvalidInput, "points must be positive")
	}

	user, err := e.store.IncrementPoints(ctx, userID, points)
	if err != nil {
		return nil, err
	}

	e.publisher.PublishToUser(userID.Hex(), realtime.EventUserPointsUpdated, PointsEvent{
		Points: user.Points,
		Level:  user.Level,
	})

	before := len(user.PendingBadges)
	user, err = e.update(ctx, user, func(u *schema.User) (bool, error) {
		before = len(u.PendingBadges)
		return score.CheckAndAwardBadges(u, e.now()), nil
	})
	if err != nil {
		return nil, err
	}

	if unlocked := user.PendingBadges[before:]; len(unlocked) > 0 {
		e.metrics.Counter("badge.unlocked").Inc(int64(len(unlocked)))
		log.WithFields(log.Fields{
			"prefix":   engineLogPrefix,
			"user_id":  userID.Hex(),
			"points":   user.Points,
			"unlocked": len(unlocked),
		}).Info("badges unlocked")

		e.publisher.PublishToUser(userID.Hex(), realtime.EventUserBadgesUpdated, BadgesEvent{
			Points:        user.Points,
			Level:         user.Level,
			Badges:        user.Badges,
			PendingBadges: user.PendingBadges,
			Unlocked:      unlocked,
		})
	}

	return user, nil
}

// ClaimBadge moves a pending badge of a user into the earned set
func (e *Engine) ClaimBadge(ctx context.Context, userID primitive.ObjectID, name string) (*schema.User, *schema.Badge, error) {
	user, err := e.store.GetUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	var claimed *schema.Badge
	user, err = e.update(ctx, user, func(u *schema.User) (bool, error) {
		b, err := score.ClaimBadge(u, name, e.now())
		if err != nil {
			return false, err
		}
		claimed = b
		return true, nil
	})
	if err != nil {
		return nil, nil, err
	}

	e.metrics.Counter("badge.claimed").Inc(1)

	event := BadgesEvent{
		Points:        user.Points,
		Level:         user.Level,
		Badges:        user.Badges,
		PendingBadges: user.PendingBadges,
	}
	e.publisher.PublishToUser(userID.Hex(), realtime.EventUserBadgesUpdated, event)
	e.publisher.PublishToUser(userID.Hex(), realtime.EventUserLevelUp, event)

	return user, claimed, nil
}

// update runs mutate against the latest user document and writes the result
// back if the document did not change in between. mutate returns false when
// there is nothing to write.
func (e *Engine) update(ctx context.Context, user *schema.User, mutate func(*schema.User) (bool, error)) (*schema.User, error) {
	for i := 0; i < maxReputationRetries; i++ {
		changed, err := mutate(user)
		if err != nil {
			return nil, err
		}
		if !changed {
			return user, nil
		}

		err = e.store.UpdateReputation(ctx, user)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, store.ErrVersionConflict) {
			return nil, err
		}

		log.WithFields(log.Fields{
			"prefix":  engineLogPrefix,
			"user_id": user.ID.Hex(),
			"attempt": i + 1,
		}).Debug("reputation version conflict, reload user")

		if user, err = e.store.GetUser(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	return nil, ErrTooManyConflicts
}
