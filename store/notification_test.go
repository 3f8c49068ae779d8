package store

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shivam222343/doantion-app/schema"
)

type NotificationTestSuite struct {
	mongoTestSuite
}

func (s *NotificationTestSuite) addNotification(userID primitive.ObjectID, at time.Time, payload schema.NotificationPayload) *schema.Notification {
	n := &schema.Notification{
		UserID:    userID,
		Type:      payload.NotificationType(),
		Title:     "title",
		Message:   "message",
		Data:      payload,
		CreatedAt: at,
	}
	s.Require().NoError(s.store.AddNotification(context.Background(), n))
	return n
}

func (s *NotificationTestSuite) TestPayloadRoundTrip() {
	user := primitive.NewObjectID()
	donationID := primitive.NewObjectID()
	s.addNotification(user, tsMarchFirst, schema.DonationRejectedPayload{
		DonationID:    donationID,
		RequestID:     primitive.NewObjectID(),
		DonationTitle: "rice bags",
		Reason:        "already promised",
	})
	s.addNotification(user, tsMarchFirst.Add(time.Minute), schema.DonationCompletedPayload{
		DonationID:    donationID,
		ReceiverID:    primitive.NewObjectID(),
		DonationTitle: "rice bags",
		Points:        100,
	})

	notifications, err := s.store.ListNotifications(context.Background(), user, 50)
	s.NoError(err)
	s.Len(notifications, 2)

	completed, ok := notifications[0].Data.(schema.DonationCompletedPayload)
	s.True(ok)
	s.Equal(int64(100), completed.Points)

	rejected, ok := notifications[1].Data.(schema.DonationRejectedPayload)
	s.True(ok)
	s.Equal("already promised", rejected.Reason)
	s.Equal(donationID, rejected.DonationID)
}

func (s *NotificationTestSuite) TestReadAndDelete() {
	user := primitive.NewObjectID()
	other := primitive.NewObjectID()
	payload := schema.DonationAcceptedPayload{DonationID: primitive.NewObjectID(), RequestID: primitive.NewObjectID()}

	first := s.addNotification(user, tsMarchFirst, payload)
	s.addNotification(user, tsMarchFirst.Add(time.Minute), payload)
	s.addNotification(user, tsMarchFirst.Add(2*time.Minute), payload)

	count, err := s.store.CountUnreadNotifications(context.Background(), user)
	s.NoError(err)
	s.Equal(int64(3), count)

	s.Equal(ErrNotificationNotFound, s.store.MarkNotificationRead(context.Background(), other, first.ID))
	s.NoError(s.store.MarkNotificationRead(context.Background(), user, first.ID))

	count, err = s.store.CountUnreadNotifications(context.Background(), user)
	s.NoError(err)
	s.Equal(int64(2), count)

	s.NoError(s.store.MarkAllNotificationsRead(context.Background(), user))
	count, err = s.store.CountUnreadNotifications(context.Background(), user)
	s.NoError(err)
	s.Equal(int64(0), count)

	s.NoError(s.store.DeleteNotification(context.Background(), user, first.ID))
	s.Equal(ErrNotificationNotFound, s.store.DeleteNotification(context.Background(), user, first.ID))

	latest, err := s.store.ListNotifications(context.Background(), user, 1)
	s.NoError(err)
	s.Len(latest, 1)

	s.NoError(s.store.DeleteAllNotifications(context.Background(), user))
	remaining, err := s.store.ListNotifications(context.Background(), user, 0)
	s.NoError(err)
	s.Empty(remaining)
}

func TestNotificationTestSuite(t *testing.T) {
	s := &NotificationTestSuite{}
	runMongoSuite(t, "test-notification", s, &s.mongoTestSuite)
}
