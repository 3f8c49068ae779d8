package donation

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shivam222343/doantion-app/apperr"
	"github.com/shivam222343/doantion-app/realtime"
	"github.com/shivam222343/doantion-app/schema"
	"github.com/shivam222343/doantion-app/store"
)

const (
	DefaultNearbyRadius = 5000
	publicDonationLimit = 10
)

// NewDonation is the input of a donor listing an item
type NewDonation struct {
	Title         string
	Description   string
	Category      string
	Quantity      string
	ImageURL      string
	Location      *schema.Location
	PickupAddress string
	Home          string
	Street        string
}

// NewDonationEvent is broadcast with donation:new
type NewDonationEvent struct {
	Donation      *schema.Donation `json:"donation"`
	DonorLocation schema.Location  `json:"donor_location"`
}

// PublicProfile is what other users see of a donor
type PublicProfile struct {
	User      *schema.User      `json:"user"`
	Donations []schema.Donation `json:"donations"`
	Stats     schema.UserStats  `json:"stats"`
}

// Manager owns the status of donations
type Manager struct {
	collaborators
	nearbyRadius int
	now          func() time.Time
}

func NewManager(s store.MongoStore, a Awarder, n Notifier, scope tally.Scope, nearbyRadius int) *Manager {
	if nearbyRadius <= 0 {
		nearbyRadius = DefaultNearbyRadius
	}
	return &Manager{
		collaborators: newCollaborators(s, a, n, scope),
		nearbyRadius:  nearbyRadius,
		now:           time.Now,
	}
}

// CreateDonation lists a new pending donation for a donor
func (m *Manager) CreateDonation(ctx context.Context, donorID primitive.ObjectID, input NewDonation) (*schema.Donation, error) {
	title := strings.TrimSpace(input.Title)
	address := strings.TrimSpace(input.PickupAddress)
	if title == "" || input.Location == nil || address == "" {
		return nil, apperr.New(apperr.InvalidInput, "title, location and address are required")
	}
	if !input.Location.Valid() {
		return nil, apperr.New(apperr.InvalidInput, "invalid location")
	}

	category := input.Category
	if category == "" {
		category = schema.DefaultDonationCategory
	}

	donation := &schema.Donation{
		ID:             primitive.NewObjectID(),
		DonorID:        donorID,
		Title:          title,
		Category:       category,
		Description:    input.Description,
		Quantity:       input.Quantity,
		ImageURL:       input.ImageURL,
		Status:         schema.DonationPending,
		PickupLocation: schema.NewGeoJSONPoint(*input.Location),
		PickupAddress:  address,
		Home:           input.Home,
		Street:         input.Street,
		RequestedBy:    []primitive.ObjectID{},
		CreatedAt:      m.now().UTC(),
	}

	if err := m.store.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	m.notifier.Broadcast(realtime.EventDonationNew, NewDonationEvent{
		Donation:      donation,
		DonorLocation: *input.Location,
	})

	return donation, nil
}

func (m *Manager) Get(ctx context.Context, id primitive.ObjectID) (*schema.Donation, error) {
	return m.store.GetDonation(ctx, id)
}

func (m *Manager) owned(ctx context.Context, callerID, id primitive.ObjectID) (*schema.Donation, error) {
	donation, err := m.store.GetDonation(ctx, id)
	if err != nil {
		return nil, err
	}
	if donation.DonorID != callerID {
		return nil, ErrNotDonor
	}
	return donation, nil
}

// Update edits the descriptive fields of a donation, owner only
func (m *Manager) Update(ctx context.Context, callerID, id primitive.ObjectID, details schema.DonationDetails) (*schema.Donation, error) {
	if _, err := m.owned(ctx, callerID, id); err != nil {
		return nil, err
	}

	donation, err := m.store.UpdateDonationDetails(ctx, id, details)
	if err != nil {
		return nil, err
	}

	m.notifier.Broadcast(realtime.EventDonationUpdated, donation)
	return donation, nil
}

// Delete removes a donation, owner only
func (m *Manager) Delete(ctx context.Context, callerID, id primitive.ObjectID) error {
	if _, err := m.owned(ctx, callerID, id); err != nil {
		return err
	}

	if err := m.store.DeleteDonation(ctx, id); err != nil {
		return err
	}

	m.notifier.Broadcast(realtime.EventDonationDeleted, id.Hex())
	return nil
}

// Mine lists the donations of a donor. Category "All" does not filter.
func (m *Manager) Mine(ctx context.Context, donorID primitive.ObjectID, category string) ([]schema.Donation, error) {
	if category == "All" {
		category = ""
	}
	return m.store.ListDonationsByDonor(ctx, donorID, store.DonationFilter{Category: category})
}

// Nearby lists pending donations of other donors around a location
func (m *Manager) Nearby(ctx context.Context, callerID primitive.ObjectID, loc schema.Location, radius int) ([]schema.Donation, error) {
	if !loc.Valid() {
		return nil, apperr.New(apperr.InvalidInput, "invalid location")
	}
	if radius <= 0 {
		radius = m.nearbyRadius
	}
	return m.store.NearbyDonations(ctx, loc, radius, callerID)
}

// receiverOf tells whether the caller is the accepted receiver of a
// donation. The requester of the accepted request wins, receiver_id is only
// consulted when the accepted request can not be resolved to the caller.
func (m *Manager) receiverOf(ctx context.Context, donation *schema.Donation, callerID primitive.ObjectID) (bool, error) {
	if donation.AcceptedRequestID != nil {
		request, err := m.store.GetRequest(ctx, *donation.AcceptedRequestID)
		switch {
		case err == nil:
			if request.RequesterID == callerID {
				return true, nil
			}
		case errors.Is(err, store.ErrRequestNotFound):
		default:
			return false, err
		}
	}

	return donation.ReceiverID != nil && *donation.ReceiverID == callerID, nil
}

// MarkReceived completes an in-progress donation on behalf of its receiver.
// The donor gets CompletionPoints and a donation_completed notification.
func (m *Manager) MarkReceived(ctx context.Context, donationID, callerID primitive.ObjectID) (*schema.Donation, error) {
	donation, err := m.store.GetDonation(ctx, donationID)
	if err != nil {
		return nil, err
	}

	switch donation.Status {
	case schema.DonationCompleted:
		return nil, ErrAlreadyCompleted
	case schema.DonationInProgress:
	default:
		return nil, ErrNotInProgress
	}

	ok, err := m.receiverOf(ctx, donation, callerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotReceiver
	}

	completed, err := m.store.CompleteDonation(ctx, donationID, callerID)
	if err != nil {
		if errors.Is(err, store.ErrDonationResolved) {
			return nil, ErrAlreadyCompleted
		}
		return nil, err
	}

	m.metrics.Counter("donation.completed").Inc(1)
	log.WithFields(log.Fields{
		"prefix":      donationLogPrefix,
		"donation_id": donationID.Hex(),
		"receiver_id": callerID.Hex(),
	}).Info("donation completed")

	m.award(ctx, completed.DonorID, CompletionPoints, "donation completed")
	m.notify(ctx, completed.DonorID, schema.DonationCompletedPayload{
		DonationID:    completed.ID,
		ReceiverID:    callerID,
		DonationTitle: completed.Title,
		Points:        CompletionPoints,
	})
	m.notifier.Broadcast(realtime.EventDonationUpdated, completed)

	return completed, nil
}

// Cancel withdraws a pending or in-progress donation, owner only. Pending and
// accepted requests are rejected along with it and the donation no longer
// points at a receiver.
func (m *Manager) Cancel(ctx context.Context, callerID, id primitive.ObjectID) (*schema.Donation, error) {
	donation, err := m.owned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if donation.Status != schema.DonationPending && donation.Status != schema.DonationInProgress {
		return nil, ErrNotCancellable
	}

	cancelled, err := m.store.CancelDonation(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrDonationResolved) {
			return nil, ErrNotCancellable
		}
		return nil, err
	}

	m.notifier.Broadcast(realtime.EventDonationUpdated, cancelled)
	return cancelled, nil
}

// Stats counts the donations of a donor. Lives touched are the donations
// that found a receiver.
func (m *Manager) Stats(ctx context.Context, userID primitive.ObjectID) (*schema.UserStats, error) {
	user, err := m.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return m.stats(ctx, user)
}

func (m *Manager) stats(ctx context.Context, user *schema.User) (*schema.UserStats, error) {
	total, err := m.store.CountDonations(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	touched, err := m.store.CountDonations(ctx, user.ID, schema.DonationInProgress, schema.DonationCompleted)
	if err != nil {
		return nil, err
	}

	return &schema.UserStats{
		Donations:    total,
		LivesTouched: touched,
		Points:       user.Points,
	}, nil
}

// PublicProfile returns a user with the donations still open to requests
func (m *Manager) PublicProfile(ctx context.Context, userID primitive.ObjectID) (*PublicProfile, error) {
	user, err := m.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Email = ""
	user.Phone = ""

	stats, err := m.stats(ctx, user)
	if err != nil {
		return nil, err
	}

	donations, err := m.store.ListDonationsByDonor(ctx, userID, store.DonationFilter{
		Status: schema.DonationPending,
		Limit:  publicDonationLimit,
	})
	if err != nil {
		return nil, err
	}

	return &PublicProfile{
		User:      user,
		Donations: donations,
		Stats:     *stats,
	}, nil
}
