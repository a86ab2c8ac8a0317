package deadline

import (
	"fmt"
	"math"
	"time"

	"github.com/audora0212/inhashapp/internal/constants"
)

// Tier is the urgency tier of a deadline.
type Tier int

const (
	TierOverdue Tier = iota
	TierUrgent
	TierNormal
)

func (t Tier) String() string {
	switch t {
	case TierOverdue:
		return "overdue"
	case TierUrgent:
		return "urgent"
	case TierNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// Classification is the derived deadline state for a single due item.
// The remaining-text threshold and the D-day tag threshold share one
// computation so the two labels can never diverge.
type Classification struct {
	RemainingLabel string
	Tier           Tier
	DDayLabel      string
}

// Classify computes the countdown labels and urgency tier for due
// relative to now. now must always be supplied by the caller; the
// function never reads a clock.
func Classify(due, now time.Time) Classification {
	diff := due.Sub(now)
	if diff <= 0 {
		return Classification{
			RemainingLabel: "마감",
			Tier:           TierOverdue,
			DDayLabel:      "D-0",
		}
	}

	days := int(math.Ceil(diff.Seconds() / 86400))

	c := Classification{Tier: TierNormal}
	if days <= constants.DefaultUrgentThresholdDays {
		c.Tier = TierUrgent
	}

	if days <= 1 {
		c.RemainingLabel = "내일 마감"
	} else {
		c.RemainingLabel = fmt.Sprintf("%d일 남음", days)
	}

	// days is always >= 1 here; the diff <= 0 case returned D-0 above.
	c.DDayLabel = fmt.Sprintf("D-%d", days)

	return c
}
