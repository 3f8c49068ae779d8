package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shivam222343/doantion-app/realtime"
	"github.com/shivam222343/doantion-app/schema"
	"github.com/shivam222343/doantion-app/store"
	"github.com/shivam222343/doantion-app/utils"
)

const (
	centerLogPrefix = "notification"

	// ListLimit is the number of notifications returned by List
	ListLimit   = 50
	pushTimeout = 5 * time.Second
)

// NewEvent is pushed with notification:new
type NewEvent struct {
	Notification *schema.Notification `json:"notification"`
	UnreadCount  int64                `json:"unread_count"`
}

// Center persists notifications and fans events out to live sessions
type Center struct {
	store     store.Notification
	publisher realtime.Publisher
	localizer *i18n.Localizer
	now       func() time.Time

	// dispatch runs a best effort push away from the caller
	dispatch func(func())
}

func NewCenter(s store.Notification, p realtime.Publisher, lang string) *Center {
	return &Center{
		store:     s,
		publisher: p,
		localizer: utils.NewLocalizer(lang),
		now:       time.Now,
		dispatch: func(f func()) {
			go f()
		},
	}
}

// Notify stores a notification for a user and pushes it when the user is
// online. The stored record is the source of truth, push failures are only
// logged.
func (c *Center) Notify(ctx context.Context, userID primitive.ObjectID, payload schema.NotificationPayload) (*schema.Notification, error) {
	t := payload.NotificationType()

	n := &schema.Notification{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Type:      t,
		Title:     utils.Localize(c.localizer, fmt.Sprintf("notification.%s.title", t), payload),
		Message:   utils.Localize(c.localizer, messageID(payload), payload),
		Data:      payload,
		CreatedAt: c.now().UTC(),
	}

	if err := c.store.AddNotification(ctx, n); err != nil {
		log.WithFields(log.Fields{
			"prefix":  centerLogPrefix,
			"user_id": userID.Hex(),
			"type":    t,
			"error":   err,
		}).Error("add notification")
		return nil, err
	}

	c.dispatch(func() {
		c.push(n)
	})

	return n, nil
}

func messageID(payload schema.NotificationPayload) string {
	if thanks, ok := payload.(schema.SayThanksPayload); ok {
		return fmt.Sprintf("notification.%s.message_%d", schema.NotificationSayThanks, thanks.Phrase)
	}
	return fmt.Sprintf("notification.%s.message", payload.NotificationType())
}

// push sends notification:new with the unread count at the moment of push
func (c *Center) push(n *schema.Notification) {
	userID := n.UserID.Hex()
	if !c.publisher.IsOnline(userID) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
	defer cancel()

	count, err := c.store.CountUnreadNotifications(ctx, n.UserID)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":  centerLogPrefix,
			"user_id": userID,
			"error":   err,
		}).Warn("count unread notifications for push")
		sentry.CaptureException(err)
		return
	}

	c.publisher.PublishToUser(userID, realtime.EventNotificationNew, NewEvent{
		Notification: n,
		UnreadCount:  count,
	})
}

// PublishToUser sends an event to the live sessions of one user
func (c *Center) PublishToUser(userID primitive.ObjectID, event string, payload interface{}) {
	c.publisher.PublishToUser(userID.Hex(), event, payload)
}

// Broadcast sends an event to every live session
func (c *Center) Broadcast(event string, payload interface{}) {
	c.publisher.PublishBroadcast(event, payload)
}

// List returns the latest notifications of a user and the unread count
func (c *Center) List(ctx context.Context, userID primitive.ObjectID) ([]schema.Notification, int64, error) {
	notifications, err := c.store.ListNotifications(ctx, userID, ListLimit)
	if err != nil {
		return nil, 0, err
	}

	count, err := c.store.CountUnreadNotifications(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	return notifications, count, nil
}

// MarkRead marks one notification as read and returns the unread count
func (c *Center) MarkRead(ctx context.Context, userID, id primitive.ObjectID) (int64, error) {
	if err := c.store.MarkNotificationRead(ctx, userID, id); err != nil {
		return 0, err
	}
	return c.store.CountUnreadNotifications(ctx, userID)
}

func (c *Center) MarkAllRead(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	if err := c.store.MarkAllNotificationsRead(ctx, userID); err != nil {
		return 0, err
	}
	return c.store.CountUnreadNotifications(ctx, userID)
}

func (c *Center) Delete(ctx context.Context, userID, id primitive.ObjectID) (int64, error) {
	if err := c.store.DeleteNotification(ctx, userID, id); err != nil {
		return 0, err
	}
	return c.store.CountUnreadNotifications(ctx, userID)
}

// DeleteAll removes every notification of a user and returns the unread
// count left, which is not zero when a notification arrived meanwhile
func (c *Center) DeleteAll(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	if err := c.store.DeleteAllNotifications(ctx, userID); err != nil {
		return 0, err
	}
	return c.store.CountUnreadNotifications(ctx, userID)
}
