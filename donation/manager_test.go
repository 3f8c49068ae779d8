package donation

import (
	"context"

	"github.com/golang/mock/gomock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shivam222343/doantion-app/apperr"
	"github.com/shivam222343/doantion-app/realtime"
	"github.com/shivam222343/doantion-app/schema"
	"github.com/shivam222343/doantion-app/store"
)

func (s *DonationTestSuite) TestCreateDonation() {
	loc := schema.Location{Latitude: 18.52, Longitude: 73.85}

	s.store.EXPECT().CreateDonation(gomock.Any(), gomock.Any()).Return(nil)
	s.notifier.EXPECT().Broadcast(realtime.EventDonationNew, gomock.Any()).Do(func(_ string, payload interface{}) {
		event := payload.(NewDonationEvent)
		s.Equal(loc, event.DonorLocation)
		s.Equal("rice bags", event.Donation.Title)
	})

	donation, err := s.manager.CreateDonation(context.Background(), s.donorID, NewDonation{
		Title:         " rice bags ",
		Quantity:      "3",
		Location:      &loc,
		PickupAddress: "Shivaji Nagar, Pune",
	})
	s.NoError(err)
	s.Equal(schema.DonationPending, donation.Status)
	s.Equal(schema.DefaultDonationCategory, donation.Category)
	s.Equal(s.donorID, donation.DonorID)
	s.Equal(loc, donation.PickupLocation.Location())
	s.Empty(donation.RequestedBy)
	s.Nil(donation.AcceptedRequestID)
	s.Equal(testNow, donation.CreatedAt)
}

func (s *DonationTestSuite) TestCreateDonationValidation() {
	loc := schema.Location{Latitude: 18.52, Longitude: 73.85}
	outside := schema.Location{Latitude: 95, Longitude: 73.85}

	for name, input := range map[string]NewDonation{
		"no title":    {Location: &loc, PickupAddress: "Pune"},
		"no location": {Title: "rice", PickupAddress: "Pune"},
		"no address":  {Title: "rice", Location: &loc},
		"bad lat":     {Title: "rice", Location: &outside, PickupAddress: "Pune"},
	} {
		_, err := s.manager.CreateDonation(context.Background(), s.donorID, input)
		s.Equal(apperr.InvalidInput, apperr.KindOf(err), name)
	}
}

func (s *DonationTestSuite) TestUpdateByOwner() {
	donation := s.pendingDonation()
	updated := *donation
	updated.Title = "blankets"
	details := schema.DonationDetails{Title: "blankets"}

	s.store.EXPECT().GetDonation(gomock.Any(), donation.ID).Return(donation, nil)
	s.store.EXPECT().UpdateDonationDetails(gomock.Any(), donation.ID, details).Return(&updated, nil)
	s.notifier.EXPECT().Broadcast(realtime.EventDonationUpdated, &updated)

	got, err := s.manager.Update(context.Background(), s.donorID, donation.ID, details)
	s.NoError(err)
	s.Equal("blankets", got.Title)
}

func (s *DonationTestSuite) TestUpdateByStranger() {
	donation := s.pendingDonation()
	s.store.EXPECT().GetDonation(gomock.Any(), donation.ID).Return(donation, nil)

	_, err := s.manager.Update(context.Background(), s.otherID, donation.ID, schema.DonationDetails{Title: "mine now"})
	s.Equal(ErrNotDonor, err)
}

func (s *DonationTestSuite) TestDelete() {
	donation := s.pendingDonation()
	s.store.EXPECT().GetDonation(gomock.Any(), donation.ID).Return(donation, nil)
	s.store.EXPECT().DeleteDonation(gomock.Any(), donation.ID).Return(nil)
	s.notifier.EXPECT().Broadcast(realtime.EventDonationDeleted, donation.ID.Hex())

	s.NoError(s.manager.Delete(context.Background(), s.donorID, donation.ID))
}

func (s *DonationTestSuite) TestMineAllCategories() {
	s.store.EXPECT().ListDonationsByDonor(gomock.Any(), s.donorID, store.DonationFilter{}).Return([]schema.Donation{}, nil)
	_, err := s.manager.Mine(context.Background(), s.donorID, "All")
	s.NoError(err)

	s.store.EXPECT().ListDonationsByDonor(gomock.Any(), s.donorID, store.DonationFilter{Category: "Food"}).Return([]schema.Donation{}, nil)
	_, err = s.manager.Mine(context.Background(), s.donorID, "Food")
	s.NoError(err)
}

func (s *DonationTestSuite) TestNearbyDefaultRadius() {
	loc := schema.Location{Latitude: 18.52, Longitude: 73.85}
	s.store.EXPECT().NearbyDonations(gomock.Any(), loc, DefaultNearbyRadius, s.requesterID).Return([]schema.Donation{}, nil)

	_, err := s.manager.Nearby(context.Background(), s.requesterID, loc, 0)
	s.NoError(err)

	_, err = s.manager.Nearby(context.Background(), s.requesterID, schema.Location{Latitude: 18.52, Longitude: 190}, 0)
	s.Equal(apperr.InvalidInput, apperr.KindOf(err))
}

func (s *DonationTestSuite) TestMarkReceived() {
	r := s.request(schema.RequestAccepted)
	r.Status = schema.RequestAccepted
	donation := s.inProgressDonation(r)
	completed := *donation
	completed.Status = schema.DonationCompleted

	s.store.EXPECT().GetDonation(gomock.Any(), donation.ID).Return(donation, nil)
	s.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)
	s.store.EXPECT().CompleteDonation(gomock.Any(), donation.ID, s.requesterID).Return(&completed, nil)
	s.awarder.EXPECT().AwardPoints(gomock.Any(), s.donorID, CompletionPoints).Return(&schema.User{Points: 200}, nil)
	s.notifier.EXPECT().Notify(gomock.Any(), s.donorID, schema.DonationCompletedPayload{
		DonationID:    donation.ID,
		ReceiverID:    s.requesterID,
		DonationTitle: donation.Title,
		Points:        CompletionPoints,
	}).Return(&schema.Notification{}, nil)
	s.notifier.EXPECT().Broadcast(realtime.EventDonationUpdated, &completed)

	got, err := s.manager.MarkReceived(context.Background(), donation.ID, s.requesterID)
	s.NoError(err)
	s.Equal(schema.DonationCompleted, got.Status)
	s.Equal(int64(1), s.counter("donation.completed"))
}

func (s *DonationTestSuite) TestMarkReceivedTwice() {
	r := s.request(schema.RequestAccepted)
	donation := s.inProgressDonation(r)
	donation.Status = schema.DonationCompleted
	s.store.EXPECT().GetDonation(gomock.Any(), donation.ID).Return(donation, nil)

	_, err := s.manager.MarkReceived(context.Background(), donation.ID, s.requesterID)
	s.Equal(ErrAlreadyCompleted, err)
	s.Equal(apperr.Conflict, apperr.KindOf(err))
}

func (s *DonationTestSuite) TestMarkReceivedRace() {
	r := s.request(schema.RequestAccepted)
	donation := s.inProgressDonation(r)

	s.store.EXPECT().GetDonation(gomock.Any(), donation.ID).Return(donation, nil)
	s.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)
	s.store.EXPECT().CompleteDonation(gomock.Any(), donation.ID, s.requesterID).Return(nil, store.ErrDonationResolved)

	_, err := s.manager.MarkReceived(context.Background(), donation.ID, s.requesterID)
	s.Equal(ErrAlreadyCompleted, err)
}

func (s *DonationTestSuite) TestMarkReceivedByStranger() {
	r := s.request(schema.RequestAccepted)
	donation := s.inProgressDonation(r)

	s.store.EXPECT().GetDonation(gomock.Any(), donation.ID).Return(donation, nil)
	s.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)

	_, err := s.manager.MarkReceived(context.Background(), donation.ID, s.otherID)
	s.Equal(ErrNotReceiver, err)
}

func (s *DonationTestSuite) TestMarkReceivedFallsBackToReceiver() {
	r := s.request(schema.RequestAccepted)
	donation := s.inProgressDonation(r)
	completed := *donation
	completed.Status = schema.DonationCompleted

	s.store.EXPECT().GetDonation(gomock.Any(), donation.ID).Return(donation, nil)
	s.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(nil, store.ErrRequestNotFound)
	s.store.EXPECT().CompleteDonation(gomock.Any(), donation.ID, s.requesterID).Return(&completed, nil)
	s.awarder.EXPECT().AwardPoints(gomock.Any(), s.donorID, CompletionPoints).Return(&schema.User{}, nil)
	s.notifier.EXPECT().Notify(gomock.Any(), s.donorID, gomock.Any()).Return(&schema.Notification{}, nil)
	s.notifier.EXPECT().Broadcast(realtime.EventDonationUpdated, gomock.Any())

	_, err := s.manager.MarkReceived(context.Background(), donation.ID, s.requesterID)
	s.NoError(err)
}

func (s *DonationTestSuite) TestMarkReceivedBeforeAcceptance() {
	donation := s.pendingDonation()
	s.store.EXPECT().GetDonation(gomock.Any(), donation.ID).Return(donation, nil)

	_, err := s.manager.MarkReceived(context.Background(), donation.ID, s.requesterID)
	s.Equal(apperr.InvalidOperation, apperr.KindOf(err))
}

// the donor earns for the acceptance and for the completion
func (s *DonationTestSuite) TestDonorEarnsForFullHandOver() {
	r := s.request(schema.RequestPending)
	accepted := *r
	accepted.Status = schema.RequestAccepted
	donation := s.inProgressDonation(r)
	completed := *donation
	completed.Status = schema.DonationCompleted

	var earned int64
	s.awarder.EXPECT().AwardPoints(gomock.Any(), s.donorID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, points int64) (*schema.User, error) {
			earned += points
			return &schema.User{Points: earned}, nil
		}).Times(2)
	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(&schema.Notification{}, nil).AnyTimes()
	s.notifier.EXPECT().PublishToUser(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.notifier.EXPECT().Broadcast(gomock.Any(), gomock.Any()).AnyTimes()

	s.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)
	s.store.EXPECT().AcceptRequest(gomock.Any(), r.ID).Return(&schema.Arbitration{Request: accepted, Donation: *donation}, nil)
	_, err := s.arbiter.AcceptRequest(context.Background(), r.ID, s.donorID)
	s.NoError(err)

	s.store.EXPECT().GetDonation(gomock.Any(), donation.ID).Return(donation, nil)
	s.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(&accepted, nil)
	s.store.EXPECT().CompleteDonation(gomock.Any(), donation.ID, s.requesterID).Return(&completed, nil)
	_, err = s.manager.MarkReceived(context.Background(), donation.ID, s.requesterID)
	s.NoError(err)

	s.Equal(AcceptancePoints+CompletionPoints, earned)
}

func (s *DonationTestSuite) TestCancel() {
	donation := s.pendingDonation()
	cancelled := *donation
	cancelled.Status = schema.DonationCancelled

	s.store.EXPECT().GetDonation(gomock.Any(), donation.ID).Return(donation, nil)
	s.store.EXPECT().CancelDonation(gomock.Any(), donation.ID).Return(&cancelled, nil)
	s.notifier.EXPECT().Broadcast(realtime.EventDonationUpdated, &cancelled)

	got, err := s.manager.Cancel(context.Background(), s.donorID, donation.ID)
	s.NoError(err)
	s.Equal(schema.DonationCancelled, got.Status)
}

func (s *DonationTestSuite) TestCancelInProgress() {
	r := s.request(schema.RequestAccepted)
	donation := s.inProgressDonation(r)
	cancelled := *donation
	cancelled.Status = schema.DonationCancelled
	cancelled.AcceptedRequestID = nil
	cancelled.ReceiverID = nil

	s.store.EXPECT().GetDonation(gomock.Any(), donation.ID).Return(donation, nil)
	s.store.EXPECT().CancelDonation(gomock.Any(), donation.ID).Return(&cancelled, nil)
	s.notifier.EXPECT().Broadcast(realtime.EventDonationUpdated, &cancelled)

	got, err := s.manager.Cancel(context.Background(), s.donorID, donation.ID)
	s.NoError(err)
	s.Equal(schema.DonationCancelled, got.Status)
	s.Nil(got.AcceptedRequestID)
	s.Nil(got.ReceiverID)
}

func (s *DonationTestSuite) TestCancelLosesRace() {
	donation := s.pendingDonation()
	s.store.EXPECT().GetDonation(gomock.Any(), donation.ID).Return(donation, nil)
	s.store.EXPECT().CancelDonation(gomock.Any(), donation.ID).Return(nil, store.ErrDonationResolved)

	_, err := s.manager.Cancel(context.Background(), s.donorID, donation.ID)
	s.Equal(ErrNotCancellable, err)
}

func (s *DonationTestSuite) TestCancelCompleted() {
	donation := s.pendingDonation()
	donation.Status = schema.DonationCompleted
	s.store.EXPECT().GetDonation(gomock.Any(), donation.ID).Return(donation, nil)

	_, err := s.manager.Cancel(context.Background(), s.donorID, donation.ID)
	s.Equal(ErrNotCancellable, err)
}

func (s *DonationTestSuite) TestStats() {
	s.store.EXPECT().GetUser(gomock.Any(), s.donorID).Return(&schema.User{ID: s.donorID, Points: 300}, nil)
	s.store.EXPECT().CountDonations(gomock.Any(), s.donorID).Return(int64(4), nil)
	s.store.EXPECT().CountDonations(gomock.Any(), s.donorID, schema.DonationInProgress, schema.DonationCompleted).Return(int64(2), nil)

	stats, err := s.manager.Stats(context.Background(), s.donorID)
	s.NoError(err)
	s.Equal(schema.UserStats{Donations: 4, LivesTouched: 2, Points: 300}, *stats)
}

func (s *DonationTestSuite) TestPublicProfileHidesContact() {
	user := &schema.User{ID: s.donorID, Name: "Ravi", Email: "ravi@example.com", Phone: "9999999999"}
	s.store.EXPECT().GetUser(gomock.Any(), s.donorID).Return(user, nil)
	s.store.EXPECT().CountDonations(gomock.Any(), s.donorID).Return(int64(1), nil)
	s.store.EXPECT().CountDonations(gomock.Any(), s.donorID, gomock.Any(), gomock.Any()).Return(int64(0), nil)
	s.store.EXPECT().ListDonationsByDonor(gomock.Any(), s.donorID, store.DonationFilter{
		Status: schema.DonationPending,
		Limit:  publicDonationLimit,
	}).Return([]schema.Donation{*s.pendingDonation()}, nil)

	profile, err := s.manager.PublicProfile(context.Background(), s.donorID)
	s.NoError(err)
	s.Empty(profile.User.Email)
	s.Empty(profile.User.Phone)
	s.Len(profile.Donations, 1)
}
