package service

import (
	"time"

	"github.com/limbo/snackcheck/internal/rewards"
)

// Calendar tells services what day it is for the users of the deployment.
type Calendar struct {
	Now      func() time.Time
	Location *time.Location
}

func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.Local
	}
	return Calendar{Now: time.Now, Location: loc}
}

// Today is the current calendar date in the configured location.
func (c Calendar) Today() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	return rewards.CalendarDate(now().In(loc))
}
