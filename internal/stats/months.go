package stats

import "time"

// MonthRange bounds one calendar month of a season in epoch seconds,
// suitable for the match listing endpoint's startTime/endTime filters.
type MonthRange struct {
	Month int // 1-12
	Start int64
	End   int64
}

// MonthBucket associates a month with the match IDs played in it.
type MonthBucket struct {
	Month    int      `json:"month"`
	MatchIDs []string `json:"matchIds"`
}

// MonthlyRanges splits a year into per-month UTC ranges. Months that have
// not started yet (relative to now) are omitted so a mid-season generation
// does not issue queries for the future.
func MonthlyRanges(year int, now time.Time) []MonthRange {
	var ranges []MonthRange
	for m := time.January; m <= time.December; m++ {
		start := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
		if start.After(now) {
			break
		}
		end := start.AddDate(0, 1, 0).Add(-time.Second)
		ranges = append(ranges, MonthRange{
			Month: int(m),
			Start: start.Unix(),
			End:   end.Unix(),
		})
	}
	return ranges
}
