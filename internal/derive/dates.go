package derive

import (
	"strconv"
	"strings"
	"time"
)

// Today returns the local date truncated to midnight, the reference point
// for every status comparison.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// parseLocalDate accepts YYYY-MM-DD and returns the local midnight of that
// day. Anything that is not three numeric dash-separated parts is rejected.
func parseLocalDate(s string) (time.Time, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
}
