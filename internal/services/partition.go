package services

import (
	"sort"
	"time"

	"fyyur/internal/models"
)

// Clock returns the current time in the booking zone.
type Clock func() time.Time

// ZoneClock returns a Clock reading the wall clock in loc.
func ZoneClock(loc *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// PartitionShows splits entries into past (start_time <= now) and upcoming
// shows, each ordered by start time.
func PartitionShows(now time.Time, entries []models.ShowEntry) (past, upcoming []models.ShowEntry) {
	sorted := make([]models.ShowEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].StartTime.Equal(sorted[j].StartTime) {
			return sorted[i].ShowID < sorted[j].ShowID
		}
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	past = make([]models.ShowEntry, 0)
	upcoming = make([]models.ShowEntry, 0)
	for _, e := range sorted {
		if e.StartTime.After(now) {
			upcoming = append(upcoming, e)
		} else {
			past = append(past, e)
		}
	}
	return past, upcoming
}

func countUpcoming(now time.Time, shows []models.Show) int {
	n := 0
	for _, s := range shows {
		if s.StartTime.After(now) {
			n++
		}
	}
	return n
}
