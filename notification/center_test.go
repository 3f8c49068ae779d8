package notification

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shivam222343/doantion-app/mocks"
	"github.com/shivam222343/doantion-app/realtime"
	"github.com/shivam222343/doantion-app/schema"
	"github.com/shivam222343/doantion-app/utils"
)

type CenterTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	store     *mocks.MockMongoStore
	publisher *mocks.MockPublisher
	center    *Center
	userID    primitive.ObjectID
	now       time.Time
}

func (s *CenterTestSuite) SetupSuite() {
	os.Setenv("TEST_I18N_DIR", "../i18n")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("test")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	utils.InitI18NBundle()
}

func (s *CenterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockMongoStore(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)
	s.userID = primitive.NewObjectID()
	s.now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	s.center = NewCenter(s.store, s.publisher, "en")
	s.center.now = func() time.Time { return s.now }
	s.center.dispatch = func(f func()) { f() }
}

func (s *CenterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CenterTestSuite) TestNotifyOnlineUser() {
	payload := schema.DonationRequestPayload{
		RequesterName: "Asha",
		DonationTitle: "rice bags",
		Category:      "Food",
	}

	s.store.EXPECT().AddNotification(gomock.Any(), gomock.Any()).Return(nil)
	s.publisher.EXPECT().IsOnline(s.userID.Hex()).Return(true)
	s.store.EXPECT().CountUnreadNotifications(gomock.Any(), s.userID).Return(int64(3), nil)
	s.publisher.EXPECT().PublishToUser(s.userID.Hex(), realtime.EventNotificationNew, gomock.Any()).
		Do(func(_, _ string, data interface{}) {
			event := data.(NewEvent)
			s.Equal(int64(3), event.UnreadCount)
			s.Equal(schema.NotificationDonationRequest, event.Notification.Type)
		})

	n, err := s.center.Notify(context.Background(), s.userID, payload)
	s.NoError(err)
	s.Equal(s.userID, n.UserID)
	s.Equal("🎁 New Donation Request", n.Title)
	s.Equal("Asha is interested in your rice bags (Food)", n.Message)
	s.False(n.Read)
	s.Equal(s.now, n.CreatedAt)
	s.Equal(payload, n.Data)
}

func (s *CenterTestSuite) TestNotifyOfflineUser() {
	s.store.EXPECT().AddNotification(gomock.Any(), gomock.Any()).Return(nil)
	s.publisher.EXPECT().IsOnline(s.userID.Hex()).Return(false)

	n, err := s.center.Notify(context.Background(), s.userID, schema.DonationRejectedPayload{
		DonationTitle: "books",
		Reason:        "already given away",
	})
	s.NoError(err)
	s.Equal("Your request for books was declined. Reason: already given away", n.Message)
}

func (s *CenterTestSuite) TestNotifyPicksThanksPhrase() {
	s.store.EXPECT().AddNotification(gomock.Any(), gomock.Any()).Return(nil)
	s.publisher.EXPECT().IsOnline(gomock.Any()).Return(false)

	n, err := s.center.Notify(context.Background(), s.userID, schema.SayThanksPayload{
		SenderName:    "Asha",
		DonorName:     "Ravi",
		DonationTitle: "blankets",
		Phrase:        1,
	})
	s.NoError(err)
	s.Equal("🌟 Asha says: Thank you so much for your generosity with blankets.", n.Message)
}

func (s *CenterTestSuite) TestNotifyStoreFailure() {
	s.store.EXPECT().AddNotification(gomock.Any(), gomock.Any()).Return(errors.New("mongo is down"))

	_, err := s.center.Notify(context.Background(), s.userID, schema.DonationAcceptedPayload{DonationTitle: "books"})
	s.Error(err)
}

func (s *CenterTestSuite) TestPushSkippedWhenCountFails() {
	s.store.EXPECT().AddNotification(gomock.Any(), gomock.Any()).Return(nil)
	s.publisher.EXPECT().IsOnline(gomock.Any()).Return(true)
	s.store.EXPECT().CountUnreadNotifications(gomock.Any(), s.userID).Return(int64(0), errors.New("timeout"))

	_, err := s.center.Notify(context.Background(), s.userID, schema.DonationCompletedPayload{DonationTitle: "books", Points: 100})
	s.NoError(err)
}

func (s *CenterTestSuite) TestList() {
	s.store.EXPECT().ListNotifications(gomock.Any(), s.userID, int64(ListLimit)).Return([]schema.Notification{{}, {}}, nil)
	s.store.EXPECT().CountUnreadNotifications(gomock.Any(), s.userID).Return(int64(1), nil)

	notifications, unread, err := s.center.List(context.Background(), s.userID)
	s.NoError(err)
	s.Len(notifications, 2)
	s.Equal(int64(1), unread)
}

func (s *CenterTestSuite) TestMarkReadReturnsUnread() {
	id := primitive.NewObjectID()
	s.store.EXPECT().MarkNotificationRead(gomock.Any(), s.userID, id).Return(nil)
	s.store.EXPECT().CountUnreadNotifications(gomock.Any(), s.userID).Return(int64(4), nil)

	unread, err := s.center.MarkRead(context.Background(), s.userID, id)
	s.NoError(err)
	s.Equal(int64(4), unread)
}

func (s *CenterTestSuite) TestDeleteAllCountsWhatIsLeft() {
	s.store.EXPECT().DeleteAllNotifications(gomock.Any(), s.userID).Return(nil)
	s.store.EXPECT().CountUnreadNotifications(gomock.Any(), s.userID).Return(int64(1), nil)

	unread, err := s.center.DeleteAll(context.Background(), s.userID)
	s.NoError(err)
	s.Equal(int64(1), unread)
}

func (s *CenterTestSuite) TestDeleteAllFailure() {
	s.store.EXPECT().DeleteAllNotifications(gomock.Any(), s.userID).Return(errors.New("boom"))

	_, err := s.center.DeleteAll(context.Background(), s.userID)
	s.Error(err)
}

func (s *CenterTestSuite) TestForwardEvents() {
	s.publisher.EXPECT().PublishToUser(s.userID.Hex(), realtime.EventRequestNew, "payload")
	s.publisher.EXPECT().PublishBroadcast(realtime.EventDonationDeleted, "id")

	s.center.PublishToUser(s.userID, realtime.EventRequestNew, "payload")
	s.center.Broadcast(realtime.EventDonationDeleted, "id")
}

func TestCenterTestSuite(t *testing.T) {
	suite.Run(t, new(CenterTestSuite))
}
