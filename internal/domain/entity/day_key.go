package entity

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// DayKeyLayout is the calendar date format of a day key
const DayKeyLayout = "2006-01-02"

// DayPolicy decides which calendar day an instant belongs to.
// The zero value uses UTC.
type DayPolicy struct {
	location *time.Location
}

// UTCDayPolicy buckets instants by their UTC calendar date
func UTCDayPolicy() DayPolicy {
	return DayPolicy{location: time.UTC}
}

// NewDayPolicy buckets instants by their calendar date in the named IANA zone
func NewDayPolicy(timezone string) (DayPolicy, error) {
	if timezone == "" || timezone == "UTC" {
		return UTCDayPolicy(), nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return DayPolicy{}, fmt.Errorf("unknown day timezone %q: %w", timezone, err)
	}
	return DayPolicy{location: loc}, nil
}

// Location returns the reference zone of the policy
func (p DayPolicy) Location() *time.Location {
	if p.location == nil {
		return time.UTC
	}
	return p.location
}

// DayKey returns the calendar date of t under policy
func DayKey(t time.Time, policy DayPolicy) string {
	return t.In(policy.Location()).Format(DayKeyLayout)
}
