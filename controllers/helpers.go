package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
)

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// parseDateRange reads optional from/to query params (YYYY-MM-DD, inclusive)
// and returns a half-open [from, to) window in local time.
func parseDateRange(c *gin.Context, defFrom, defTo time.Time) (time.Time, time.Time, error) {
	loc := time.Local

	from := defFrom
	if s := c.Query("from"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = t
	}

	to := defTo
	if s := c.Query("to"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = t.AddDate(0, 0, 1) // inclusive end date
	}

	return from, to, nil
}
