package score

import (
	"time"

	"github.com/shivam222343/doantion-app/apperr"
	"github.com/shivam222343/doantion-app/schema"
)

var ErrBadgeNotPending = apperr.New(apperr.NotFound, "badge is not waiting to be claimed")

// Level derives a user's level from the number of claimed badges
func Level(claimed int) int {
	return claimed + 1
}

// CheckAndAwardBadges unlocks every catalog badge the user's points reach and
// which is neither claimed nor pending yet. Unlocked badges go to
// PendingBadges and have to be claimed. It returns whether anything was unlocked.
func CheckAndAwardBadges(user *schema.User, now time.Time) bool {
	unlocked := false

	for _, b := range catalog {
		if b.Threshold > user.Points {
			break
		}

		if user.HasBadge(b.Name) {
			continue
		}

		user.PendingBadges = append(user.PendingBadges, schema.Badge{
			Name:       b.Name,
			Icon:       b.Icon,
			Category:   b.Category,
			Color:      b.Color,
			UnlockedAt: now,
		})
		unlocked = true
	}

	return unlocked
}

// ClaimBadge moves a pending badge into the earned badges and recalculates
// the level. This is the only place a level changes.
func ClaimBadge(user *schema.User, name string, now time.Time) (*schema.Badge, error) {
	idx := -1
	for i, b := range user.PendingBadges {
		if b.Name == name {
			idx = i
			break
		}
	}

	if idx < 0 {
		return nil, ErrBadgeNotPending
	}

	badge := user.PendingBadges[idx]
	earnedAt := now
	badge.EarnedAt = &earnedAt

	pending := make([]schema.Badge, 0, len(user.PendingBadges)-1)
	pending = append(pending, user.PendingBadges[:idx]...)
	pending = append(pending, user.PendingBadges[idx+1:]...)

	user.PendingBadges = pending
	user.Badges = append(user.Badges, badge)
	user.Level = Level(len(user.Badges))

	return &badge, nil
}
