package donation

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shivam222343/doantion-app/realtime"
	"github.com/shivam222343/doantion-app/schema"
	"github.com/shivam222343/doantion-app/store"
)

// ThanksPhrases is the size of the thank-you phrase pool
const ThanksPhrases = 5

const (
	fallbackRequesterName = "A user"
	fallbackDonorName     = "the donor"
	fallbackItemTitle     = "the donated item"
)

// Arbiter decides which request wins a donation
type Arbiter struct {
	collaborators
	now func() time.Time

	randLock sync.Mutex
	rand     *rand.Rand
}

func NewArbiter(s store.MongoStore, a Awarder, n Notifier, scope tally.Scope) *Arbiter {
	return &Arbiter{
		collaborators: newCollaborators(s, a, n, scope),
		now:           time.Now,
		rand:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (a *Arbiter) pickPhrase() int {
	a.randLock.Lock()
	defer a.randLock.Unlock()
	return a.rand.Intn(ThanksPhrases)
}

// CreateRequest files a pending request of a requester on a donation and
// lets the donor know
func (a *Arbiter) CreateRequest(ctx context.Context, donationID, requesterID primitive.ObjectID, message string) (*schema.DonationRequest, error) {
	donation, err := a.store.GetDonation(ctx, donationID)
	if err != nil {
		return nil, err
	}

	if donation.DonorID == requesterID {
		return nil, ErrOwnDonation
	}

	requested, err := a.store.HasRequested(ctx, donationID, requesterID)
	if err != nil {
		return nil, err
	}
	if requested {
		return nil, store.ErrDuplicateRequest
	}

	if donation.Status != schema.DonationPending {
		return nil, ErrDonationClosed
	}

	request := &schema.DonationRequest{
		ID:          primitive.NewObjectID(),
		DonationID:  donationID,
		RequesterID: requesterID,
		DonorID:     donation.DonorID,
		Status:      schema.RequestPending,
		Message:     strings.TrimSpace(message),
		CreatedAt:   a.now().UTC(),
	}
	if err := a.store.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	// the request is inserted before the donation is touched, so an accept
	// committing in between either rejects it or makes this update miss
	if err := a.store.AddInterestedParty(ctx, donationID, requesterID); err != nil {
		a.withdraw(ctx, request)
		if errors.Is(err, store.ErrDonationResolved) {
			a.metrics.Counter("request.closed_race").Inc(1)
			return nil, ErrDonationClosed
		}
		return nil, err
	}

	a.metrics.Counter("request.created").Inc(1)

	a.notify(ctx, donation.DonorID, schema.DonationRequestPayload{
		DonationID:    donation.ID,
		RequestID:     request.ID,
		RequesterID:   requesterID,
		RequesterName: a.userName(ctx, requesterID, fallbackRequesterName),
		DonationTitle: donation.Title,
		Category:      donation.Category,
	})
	a.notifier.PublishToUser(donation.DonorID, realtime.EventRequestNew, request)

	return request, nil
}

// withdraw rejects a request whose donation closed while it was filed
func (a *Arbiter) withdraw(ctx context.Context, request *schema.DonationRequest) {
	if _, err := a.store.RejectRequest(ctx, request.ID); err != nil && !errors.Is(err, store.ErrRequestResolved) {
		log.WithFields(log.Fields{
			"prefix":     donationLogPrefix,
			"request_id": request.ID.Hex(),
			"error":      err,
		}).Error("withdraw request of a closed donation")
	}
}

func (a *Arbiter) ownRequest(ctx context.Context, requestID, donorID primitive.ObjectID) (*schema.DonationRequest, error) {
	request, err := a.store.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.DonorID != donorID {
		return nil, ErrNotDonor
	}
	return request, nil
}

// AcceptRequest makes a request the winner of its donation. The request is
// accepted, its pending siblings rejected and the donation moved to
// in-progress as one unit; the donor then earns AcceptancePoints.
func (a *Arbiter) AcceptRequest(ctx context.Context, requestID, callerID primitive.ObjectID) (*schema.Arbitration, error) {
	if _, err := a.ownRequest(ctx, requestID, callerID); err != nil {
		return nil, err
	}

	arbitration, err := a.store.AcceptRequest(ctx, requestID)
	if err != nil {
		if errors.Is(err, store.ErrRequestResolved) || errors.Is(err, store.ErrDonationResolved) {
			a.metrics.Counter("request.accept_conflict").Inc(1)
		}
		return nil, err
	}

	a.metrics.Counter("request.accepted").Inc(1)
	log.WithFields(log.Fields{
		"prefix":      donationLogPrefix,
		"request_id":  requestID.Hex(),
		"donation_id": arbitration.Donation.ID.Hex(),
		"rejected":    arbitration.Rejected,
	}).Info("request accepted")

	a.award(ctx, callerID, AcceptancePoints, "request accepted")
	a.notify(ctx, arbitration.Request.RequesterID, schema.DonationAcceptedPayload{
		DonationID:    arbitration.Donation.ID,
		RequestID:     arbitration.Request.ID,
		DonationTitle: arbitration.Donation.Title,
	})
	a.notifier.PublishToUser(callerID, realtime.EventRequestUpdated, arbitration.Request)
	a.notifier.Broadcast(realtime.EventDonationUpdated, arbitration.Donation)

	return arbitration, nil
}

// RejectRequest turns a request down, the donation stays untouched
func (a *Arbiter) RejectRequest(ctx context.Context, requestID, callerID primitive.ObjectID, reason string) (*schema.DonationRequest, error) {
	if _, err := a.ownRequest(ctx, requestID, callerID); err != nil {
		return nil, err
	}

	request, err := a.store.RejectRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	a.metrics.Counter("request.rejected").Inc(1)

	title := fallbackItemTitle
	donation, err := a.store.GetDonation(ctx, request.DonationID)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":      donationLogPrefix,
			"donation_id": request.DonationID.Hex(),
			"error":       err,
		}).Warn("get donation of rejected request")
	} else {
		title = donation.Title
	}

	a.notify(ctx, request.RequesterID, schema.DonationRejectedPayload{
		DonationID:    request.DonationID,
		RequestID:     request.ID,
		DonationTitle: title,
		Reason:        strings.TrimSpace(reason),
	})
	a.notifier.PublishToUser(callerID, realtime.EventRequestUpdated, request)
	if donation != nil {
		a.notifier.Broadcast(realtime.EventDonationUpdated, donation)
	}

	return request, nil
}

// SendThanks lets the requester of an accepted request thank the donor. Only
// the first call notifies, later calls succeed without side effects.
func (a *Arbiter) SendThanks(ctx context.Context, requestID, callerID primitive.ObjectID) (*schema.DonationRequest, error) {
	request, err := a.store.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.RequesterID != callerID {
		return nil, ErrNotRequester
	}
	if request.Status != schema.RequestAccepted {
		return nil, ErrRequestNotAccepted
	}
	if request.ThanksSent {
		return request, nil
	}

	changed, err := a.store.MarkThanksSent(ctx, requestID)
	if err != nil {
		return nil, err
	}
	request.ThanksSent = true
	if !changed {
		return request, nil
	}

	title := fallbackItemTitle
	if donation, err := a.store.GetDonation(ctx, request.DonationID); err == nil && donation.Title != "" {
		title = donation.Title
	}

	a.notify(ctx, request.DonorID, schema.SayThanksPayload{
		DonationID:    request.DonationID,
		RequestID:     request.ID,
		SenderName:    a.userName(ctx, request.RequesterID, fallbackRequesterName),
		DonorName:     a.userName(ctx, request.DonorID, fallbackDonorName),
		DonationTitle: title,
		Phrase:        a.pickPhrase(),
	})

	return request, nil
}

// GetRequest returns a request to its donor or its requester
func (a *Arbiter) GetRequest(ctx context.Context, requestID, callerID primitive.ObjectID) (*schema.DonationRequest, error) {
	request, err := a.store.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.DonorID != callerID && request.RequesterID != callerID {
		return nil, ErrNotParticipant
	}
	return request, nil
}

// MyRequests lists the requests a user filed
func (a *Arbiter) MyRequests(ctx context.Context, requesterID primitive.ObjectID) ([]schema.DonationRequest, error) {
	return a.store.ListRequestsByRequester(ctx, requesterID)
}

// Received lists the requests filed on the donations of a donor
func (a *Arbiter) Received(ctx context.Context, donorID primitive.ObjectID, status schema.RequestStatus) ([]schema.DonationRequest, error) {
	return a.store.ListRequestsByDonor(ctx, donorID, status)
}
