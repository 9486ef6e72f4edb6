package request

import (
	"time"
)

const DayLayout = "2006-01-02"

// DailyCountQuery selects a UTC day as YYYY-MM-DD; empty means today.
type DailyCountQuery struct {
	Date string `form:"date"`
}

func (q *DailyCountQuery) Day(now time.Time) (time.Time, error) {
	if q.Date == "" {
		return now.UTC(), nil
	}
	return time.ParseInLocation(DayLayout, q.Date, time.UTC)
}
