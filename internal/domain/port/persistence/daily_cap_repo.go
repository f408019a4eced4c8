package persistence

import (
	"context"
)

// DailyCapRepository tracks how many acorns each user has been awarded per day key
type DailyCapRepository interface {
	// Award grants up to requested acorns without letting the day's total exceed dailyCap.
	// Returns the granted amount and the awarded total after the grant.
	Award(ctx context.Context, userID, day string, requested, dailyCap int64) (granted int64, awarded int64, err error)

	// GetAwarded returns the awarded total for the day, 0 when absent
	GetAwarded(ctx context.Context, userID, day string) (int64, error)

	// PurgeBefore removes rows whose day key sorts before day
	PurgeBefore(ctx context.Context, day string) (int64, error)
}
