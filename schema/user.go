package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UserCollection = "users"
)

// Badge - a badge record owned by a user. EarnedAt is only set once the
// badge has been claimed.
type Badge struct {
	Name       string     `bson:"name" json:"name"`
	Icon       string     `bson:"icon" json:"icon"`
	Category   string     `bson:"category" json:"category"`
	Color      string     `bson:"color" json:"color"`
	UnlockedAt time.Time  `bson:"unlocked_at" json:"unlocked_at"`
	EarnedAt   *time.Time `bson:"earned_at,omitempty" json:"earned_at,omitempty"`
}

// User - participant profile along with the reputation state.
// Version is bumped on every reputation write for optimistic concurrency.
type User struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	ProfileImage  string             `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	Points        int64              `bson:"points" json:"points"`
	Level         int                `bson:"level" json:"level"`
	Badges        []Badge            `bson:"badges" json:"badges"`
	PendingBadges []Badge            `bson:"pending_badges" json:"pending_badges"`
	Version       int64              `bson:"version" json:"-"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`

	// last position reported by a live session
	Location          *GeoJSON   `bson:"location,omitempty" json:"-"`
	LocationUpdatedAt *time.Time `bson:"location_updated_at,omitempty" json:"-"`
}

// HasBadge reports whether a badge name is either claimed or pending
func (u *User) HasBadge(name string) bool {
	for _, b := range u.Badges {
		if b.Name == name {
			return true
		}
	}
	for _, b := range u.PendingBadges {
		if b.Name == name {
			return true
		}
	}
	return false
}

// DisplayName returns the name of a user or the fallback when empty
func (u *User) DisplayName(fallback string) string {
	if u == nil || u.Name == "" {
		return fallback
	}
	return u.Name
}

// UserStats - donation counters of a donor
type UserStats struct {
	Donations    int64 `json:"donations"`
	LivesTouched int64 `json:"lives_touched"`
	Points       int64 `json:"points"`
}
