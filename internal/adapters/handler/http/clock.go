package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
)

var errInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

// Clock resolves "today" for requests that do not pass an explicit date.
type Clock func() time.Time

// SystemClock reads the wall clock in loc.
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return func() time.Time { return time.Now().In(loc) }
}

// dateParam reads ?date=YYYY-MM-DD, falling back to the clock.
func dateParam(c *gin.Context, clock Clock) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		now := clock()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	date, err := time.Parse(domain.DayIDLayout, raw)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return date, nil
}
