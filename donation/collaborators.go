package donation

import (
	"context"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shivam222343/doantion-app/apperr"
	"github.com/shivam222343/doantion-app/schema"
	"github.com/shivam222343/doantion-app/store"
)

const (
	donationLogPrefix = "donation"

	// AcceptancePoints is awarded to the donor when a request is accepted
	AcceptancePoints int64 = 100
	// CompletionPoints is awarded to the donor when a donation is received
	CompletionPoints int64 = 100
)

var (
	ErrNotDonor           = apperr.New(apperr.Forbidden, "you are not the donor of this item")
	ErrNotRequester       = apperr.New(apperr.Forbidden, "you are not the requester of this item")
	ErrNotReceiver        = apperr.New(apperr.Forbidden, "only the accepted receiver can mark the donation as received")
	ErrNotParticipant     = apperr.New(apperr.Forbidden, "you are neither the donor nor the requester")
	ErrOwnDonation        = apperr.New(apperr.InvalidOperation, "you can not request your own donation")
	ErrDonationClosed     = apperr.New(apperr.InvalidOperation, "the donation is no longer accepting requests")
	ErrNotInProgress      = apperr.New(apperr.InvalidOperation, "the donation has no accepted request yet")
	ErrAlreadyCompleted   = apperr.New(apperr.Conflict, "the donation has already been received")
	ErrNotCancellable     = apperr.New(apperr.InvalidOperation, "only pending or in-progress donations can be cancelled")
	ErrRequestNotAccepted = apperr.New(apperr.InvalidOperation, "thanks can only be sent for an accepted request")
)

// Awarder grants reputation points
type Awarder interface {
	AwardPoints(ctx context.Context, userID primitive.ObjectID, points int64) (*schema.User, error)
}

// Notifier stores notifications and fans events out to live sessions
type Notifier interface {
	Notify(ctx context.Context, userID primitive.ObjectID, payload schema.NotificationPayload) (*schema.Notification, error)
	PublishToUser(userID primitive.ObjectID, event string, payload interface{})
	Broadcast(event string, payload interface{})
}

// collaborators holds what Manager and Arbiter share. Awards and
// notifications are side effects, their failures never fail the action.
type collaborators struct {
	store    store.MongoStore
	awarder  Awarder
	notifier Notifier
	metrics  tally.Scope
}

func newCollaborators(s store.MongoStore, a Awarder, n Notifier, scope tally.Scope) collaborators {
	if scope == nil {
		scope = tally.NoopScope
	}
	return collaborators{
		store:    s,
		awarder:  a,
		notifier: n,
		metrics:  scope.SubScope("donation"),
	}
}

func (c collaborators) award(ctx context.Context, userID primitive.ObjectID, points int64, reason string) {
	if _, err := c.awarder.AwardPoints(ctx, userID, points); err != nil {
		c.metrics.Counter("award.failed").Inc(1)
		log.WithFields(log.Fields{
			"prefix":  donationLogPrefix,
			"user_id": userID.Hex(),
			"points":  points,
			"reason":  reason,
			"error":   err,
		}).Error("award points")
		sentry.CaptureException(err)
	}
}

func (c collaborators) notify(ctx context.Context, userID primitive.ObjectID, payload schema.NotificationPayload) {
	if _, err := c.notifier.Notify(ctx, userID, payload); err != nil {
		c.metrics.Counter("notify.failed").Inc(1)
		log.WithFields(log.Fields{
			"prefix":  donationLogPrefix,
			"user_id": userID.Hex(),
			"type":    payload.NotificationType(),
			"error":   err,
		}).Error("notify user")
		sentry.CaptureException(err)
	}
}

// userName looks a user up for display. A missing user is not an error here.
func (c collaborators) userName(ctx context.Context, userID primitive.ObjectID, fallback string) string {
	user, err := c.store.GetUser(ctx, userID)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":  donationLogPrefix,
			"user_id": userID.Hex(),
			"error":   err,
		}).Warn("look up user name")
		return fallback
	}
	return user.DisplayName(fallback)
}
