package donation

import (
	"context"
	"errors"

	"github.com/golang/mock/gomock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shivam222343/doantion-app/apperr"
	"github.com/shivam222343/doantion-app/realtime"
	"github.com/shivam222343/doantion-app/schema"
	"github.com/shivam222343/doantion-app/store"
)

func (s *DonationTestSuite) TestCreateRequest() {
	donation := s.pendingDonation()

	s.store.EXPECT().GetDonation(gomock.Any(), donation.ID).Return(donation, nil)
	s.store.EXPECT().HasRequested(gomock.Any(), donation.ID, s.requesterID).Return(false, nil)
	s.store.EXPECT().AddInterestedParty(gomock.Any(), donation.ID, s.requesterID).Return(nil)
	s.store.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *schema.DonationRequest) error {
		s.Equal(schema.RequestPending, r.Status)
		s.Equal(s.donorID, r.DonorID)
		s.Equal("I need one for my son", r.Message)
		return nil
	})
	s.store.EXPECT().GetUser(gomock.Any(), s.requesterID).Return(&schema.User{ID: s.requesterID, Name: "Asha"}, nil)
	s.notifier.EXPECT().Notify(gomock.Any(), s.donorID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, payload schema.NotificationPayload) (*schema.Notification, error) {
			p := payload.(schema.DonationRequestPayload)
			s.Equal("Asha", p.RequesterName)
			s.Equal("winter jackets", p.DonationTitle)
			s.Equal("Clothes", p.Category)
			return &schema.Notification{}, nil
		})
	s.notifier.EXPECT().PublishToUser(s.donorID, realtime.EventRequestNew, gomock.Any())

	request, err := s.arbiter.CreateRequest(context.Background(), donation.ID, s.requesterID, "  I need one for my son ")
	s.NoError(err)
	s.Equal(donation.ID, request.DonationID)
	s.Equal(testNow, request.CreatedAt)
}

func (s *DonationTestSuite) TestCreateRequestMissingDonation() {
	id := primitive.NewObjectID()
	s.store.EXPECT().GetDonation(gomock.Any(), id).Return(nil, store.ErrDonationNotFound)

	_, err := s.arbiter.CreateRequest(context.Background(), id, s.requesterID, "")
	s.Equal(apperr.NotFound, apperr.KindOf(err))
}

func (s *DonationTestSuite) TestCreateRequestOnOwnDonation() {
	donation := s.pendingDonation()
	s.store.EXPECT().GetDonation(gomock.Any(), donation.ID).Return(donation, nil)

	_, err := s.arbiter.CreateRequest(context.Background(), donation.ID, s.donorID, "")
	s.Equal(ErrOwnDonation, err)
	s.Equal(apperr.InvalidOperation, apperr.KindOf(err))
}

func (s *DonationTestSuite) TestCreateRequestTwice() {
	donation := s.pendingDonation()
	s.store.EXPECT().GetDonation(gomock.Any(), donation.ID).Return(donation, nil)
	s.store.EXPECT().HasRequested(gomock.Any(), donation.ID, s.requesterID).Return(true, nil)

	_, err := s.arbiter.CreateRequest(context.Background(), donation.ID, s.requesterID, "")
	s.Equal(apperr.Conflict, apperr.KindOf(err))
}

func (s *DonationTestSuite) TestCreateRequestLosesInsertRace() {
	donation := s.pendingDonation()
	s.store.EXPECT().GetDonation(gomock.Any(), donation.ID).Return(donation, nil)
	s.store.EXPECT().HasRequested(gomock.Any(), donation.ID, s.requesterID).Return(false, nil)
	s.store.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(store.ErrDuplicateRequest)

	_, err := s.arbiter.CreateRequest(context.Background(), donation.ID, s.requesterID, "")
	s.Equal(apperr.Conflict, apperr.KindOf(err))
}

// the donor accepts another request between the status check and the insert
func (s *DonationTestSuite) TestCreateRequestWhileDonationGetsAccepted() {
	donation := s.pendingDonation()
	var inserted primitive.ObjectID

	s.store.EXPECT().GetDonation(gomock.Any(), donation.ID).Return(donation, nil)
	s.store.EXPECT().HasRequested(gomock.Any(), donation.ID, s.requesterID).Return(false, nil)
	s.store.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *schema.DonationRequest) error {
		inserted = r.ID
		return nil
	})
	s.store.EXPECT().AddInterestedParty(gomock.Any(), donation.ID, s.requesterID).Return(store.ErrDonationResolved)
	s.store.EXPECT().RejectRequest(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id primitive.ObjectID) (*schema.DonationRequest, error) {
		s.Equal(inserted, id)
		return &schema.DonationRequest{ID: id, Status: schema.RequestRejected}, nil
	})

	request, err := s.arbiter.CreateRequest(context.Background(), donation.ID, s.requesterID, "")
	s.Nil(request)
	s.Equal(ErrDonationClosed, err)
	s.Equal(int64(1), s.counter("request.closed_race"))
	s.Equal(int64(0), s.counter("request.created"))
}

func (s *DonationTestSuite) TestCreateRequestAfterAcceptRejectedIt() {
	donation := s.pendingDonation()

	s.store.EXPECT().GetDonation(gomock.Any(), donation.ID).Return(donation, nil)
	s.store.EXPECT().HasRequested(gomock.Any(), donation.ID, s.requesterID).Return(false, nil)
	s.store.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(nil)
	s.store.EXPECT().AddInterestedParty(gomock.Any(), donation.ID, s.requesterID).Return(store.ErrDonationResolved)
	s.store.EXPECT().RejectRequest(gomock.Any(), gomock.Any()).Return(nil, store.ErrRequestResolved)

	_, err := s.arbiter.CreateRequest(context.Background(), donation.ID, s.requesterID, "")
	s.Equal(ErrDonationClosed, err)
}

func (s *DonationTestSuite) TestCreateRequestOnClosedDonation() {
	donation := s.pendingDonation()
	donation.Status = schema.DonationInProgress
	s.store.EXPECT().GetDonation(gomock.Any(), donation.ID).Return(donation, nil)
	s.store.EXPECT().HasRequested(gomock.Any(), donation.ID, s.requesterID).Return(false, nil)

	_, err := s.arbiter.CreateRequest(context.Background(), donation.ID, s.requesterID, "")
	s.Equal(ErrDonationClosed, err)
}

// D1 lists X, R1 and R2 request it, D1 accepts R1
func (s *DonationTestSuite) TestAcceptRequest() {
	r1 := s.request(schema.RequestPending)
	accepted := *r1
	accepted.Status = schema.RequestAccepted
	donation := s.inProgressDonation(r1)

	s.store.EXPECT().GetRequest(gomock.Any(), r1.ID).Return(r1, nil)
	s.store.EXPECT().AcceptRequest(gomock.Any(), r1.ID).Return(&schema.Arbitration{
		Request:  accepted,
		Donation: *donation,
		Rejected: 1,
	}, nil)
	s.awarder.EXPECT().AwardPoints(gomock.Any(), s.donorID, AcceptancePoints).Return(&schema.User{Points: 100}, nil)
	s.notifier.EXPECT().Notify(gomock.Any(), s.requesterID, schema.DonationAcceptedPayload{
		DonationID:    donation.ID,
		RequestID:     r1.ID,
		DonationTitle: donation.Title,
	}).Return(&schema.Notification{}, nil)
	s.notifier.EXPECT().PublishToUser(s.donorID, realtime.EventRequestUpdated, accepted)
	s.notifier.EXPECT().Broadcast(realtime.EventDonationUpdated, *donation)

	arbitration, err := s.arbiter.AcceptRequest(context.Background(), r1.ID, s.donorID)
	s.NoError(err)
	s.Equal(schema.RequestAccepted, arbitration.Request.Status)
	s.Equal(schema.DonationInProgress, arbitration.Donation.Status)
	s.Equal(r1.ID, *arbitration.Donation.AcceptedRequestID)
	s.Equal(int64(1), arbitration.Rejected)
	s.Equal(int64(1), s.counter("request.accepted"))
}

func (s *DonationTestSuite) TestAcceptRequestByStranger() {
	r := s.request(schema.RequestPending)
	s.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)

	_, err := s.arbiter.AcceptRequest(context.Background(), r.ID, s.otherID)
	s.Equal(apperr.Forbidden, apperr.KindOf(err))

	s.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)
	_, err = s.arbiter.AcceptRequest(context.Background(), r.ID, s.requesterID)
	s.Equal(apperr.Forbidden, apperr.KindOf(err), "the requester can not accept its own request")
}

func (s *DonationTestSuite) TestAcceptRequestMissing() {
	id := primitive.NewObjectID()
	s.store.EXPECT().GetRequest(gomock.Any(), id).Return(nil, store.ErrRequestNotFound)

	_, err := s.arbiter.AcceptRequest(context.Background(), id, s.donorID)
	s.Equal(apperr.NotFound, apperr.KindOf(err))
}

func (s *DonationTestSuite) TestAcceptRequestLosesArbitration() {
	r := s.request(schema.RequestPending)
	s.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)
	s.store.EXPECT().AcceptRequest(gomock.Any(), r.ID).Return(nil, store.ErrRequestResolved)

	_, err := s.arbiter.AcceptRequest(context.Background(), r.ID, s.donorID)
	s.Equal(apperr.Conflict, apperr.KindOf(err))
	s.Equal(int64(1), s.counter("request.accept_conflict"))
	s.Equal(int64(0), s.counter("request.accepted"))
}

func (s *DonationTestSuite) TestAcceptRequestSurvivesSideEffectFailures() {
	r := s.request(schema.RequestPending)
	accepted := *r
	accepted.Status = schema.RequestAccepted

	s.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)
	s.store.EXPECT().AcceptRequest(gomock.Any(), r.ID).Return(&schema.Arbitration{
		Request:  accepted,
		Donation: *s.inProgressDonation(r),
	}, nil)
	s.awarder.EXPECT().AwardPoints(gomock.Any(), s.donorID, AcceptancePoints).Return(nil, errors.New("mongo is down"))
	s.notifier.EXPECT().Notify(gomock.Any(), s.requesterID, gomock.Any()).Return(nil, errors.New("mongo is down"))
	s.notifier.EXPECT().PublishToUser(s.donorID, realtime.EventRequestUpdated, gomock.Any())
	s.notifier.EXPECT().Broadcast(realtime.EventDonationUpdated, gomock.Any())

	arbitration, err := s.arbiter.AcceptRequest(context.Background(), r.ID, s.donorID)
	s.NoError(err)
	s.Equal(schema.RequestAccepted, arbitration.Request.Status)
	s.Equal(int64(1), s.counter("award.failed"))
	s.Equal(int64(1), s.counter("notify.failed"))
}

func (s *DonationTestSuite) TestRejectRequest() {
	r := s.request(schema.RequestPending)
	rejected := *r
	rejected.Status = schema.RequestRejected
	donation := s.pendingDonation()
	donation.ID = r.DonationID

	s.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)
	s.store.EXPECT().RejectRequest(gomock.Any(), r.ID).Return(&rejected, nil)
	s.store.EXPECT().GetDonation(gomock.Any(), r.DonationID).Return(donation, nil)
	s.notifier.EXPECT().Notify(gomock.Any(), s.requesterID, schema.DonationRejectedPayload{
		DonationID:    r.DonationID,
		RequestID:     r.ID,
		DonationTitle: donation.Title,
		Reason:        "already promised",
	}).Return(&schema.Notification{}, nil)
	s.notifier.EXPECT().PublishToUser(s.donorID, realtime.EventRequestUpdated, &rejected)
	s.notifier.EXPECT().Broadcast(realtime.EventDonationUpdated, donation)

	got, err := s.arbiter.RejectRequest(context.Background(), r.ID, s.donorID, "already promised ")
	s.NoError(err)
	s.Equal(schema.RequestRejected, got.Status)
	s.Equal(int64(1), s.counter("request.rejected"))
}

func (s *DonationTestSuite) TestRejectRequestByRequester() {
	r := s.request(schema.RequestPending)
	s.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)

	_, err := s.arbiter.RejectRequest(context.Background(), r.ID, s.requesterID, "")
	s.Equal(ErrNotDonor, err)
}

func (s *DonationTestSuite) TestRejectResolvedRequest() {
	r := s.request(schema.RequestAccepted)
	s.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)
	s.store.EXPECT().RejectRequest(gomock.Any(), r.ID).Return(nil, store.ErrRequestResolved)

	_, err := s.arbiter.RejectRequest(context.Background(), r.ID, s.donorID, "")
	s.Equal(apperr.Conflict, apperr.KindOf(err))
}

func (s *DonationTestSuite) TestSendThanks() {
	r := s.request(schema.RequestAccepted)
	donation := s.inProgressDonation(r)

	s.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)
	s.store.EXPECT().MarkThanksSent(gomock.Any(), r.ID).Return(true, nil)
	s.store.EXPECT().GetDonation(gomock.Any(), r.DonationID).Return(donation, nil)
	s.store.EXPECT().GetUser(gomock.Any(), s.requesterID).Return(&schema.User{Name: "Asha"}, nil)
	s.store.EXPECT().GetUser(gomock.Any(), s.donorID).Return(nil, store.ErrUserNotFound)
	s.notifier.EXPECT().Notify(gomock.Any(), s.donorID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, payload schema.NotificationPayload) (*schema.Notification, error) {
			p := payload.(schema.SayThanksPayload)
			s.Equal("Asha", p.SenderName)
			s.Equal(fallbackDonorName, p.DonorName)
			s.Equal(donation.Title, p.DonationTitle)
			s.GreaterOrEqual(p.Phrase, 0)
			s.Less(p.Phrase, ThanksPhrases)
			return &schema.Notification{}, nil
		})

	got, err := s.arbiter.SendThanks(context.Background(), r.ID, s.requesterID)
	s.NoError(err)
	s.True(got.ThanksSent)
}

func (s *DonationTestSuite) TestSendThanksTwice() {
	r := s.request(schema.RequestAccepted)
	r.ThanksSent = true
	s.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)

	got, err := s.arbiter.SendThanks(context.Background(), r.ID, s.requesterID)
	s.NoError(err)
	s.True(got.ThanksSent)
}

func (s *DonationTestSuite) TestSendThanksRace() {
	r := s.request(schema.RequestAccepted)
	s.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)
	s.store.EXPECT().MarkThanksSent(gomock.Any(), r.ID).Return(false, nil)

	got, err := s.arbiter.SendThanks(context.Background(), r.ID, s.requesterID)
	s.NoError(err)
	s.True(got.ThanksSent)
}

func (s *DonationTestSuite) TestSendThanksByDonor() {
	r := s.request(schema.RequestAccepted)
	s.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)

	_, err := s.arbiter.SendThanks(context.Background(), r.ID, s.donorID)
	s.Equal(ErrNotRequester, err)
}

func (s *DonationTestSuite) TestSendThanksBeforeAcceptance() {
	r := s.request(schema.RequestPending)
	s.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil)

	_, err := s.arbiter.SendThanks(context.Background(), r.ID, s.requesterID)
	s.Equal(apperr.InvalidOperation, apperr.KindOf(err))
}

func (s *DonationTestSuite) TestGetRequestParticipantsOnly() {
	r := s.request(schema.RequestPending)
	s.store.EXPECT().GetRequest(gomock.Any(), r.ID).Return(r, nil).Times(3)

	_, err := s.arbiter.GetRequest(context.Background(), r.ID, s.donorID)
	s.NoError(err)
	_, err = s.arbiter.GetRequest(context.Background(), r.ID, s.requesterID)
	s.NoError(err)
	_, err = s.arbiter.GetRequest(context.Background(), r.ID, s.otherID)
	s.Equal(ErrNotParticipant, err)
}
