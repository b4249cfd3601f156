package view

import (
	"time"

	"football-matches-service/internal/domain/matches"
	"football-matches-service/internal/timeutil"
)

// Buckets holds the two tab lists. They are not a partition.
type Buckets struct {
	Today    []matches.Match
	Upcoming []matches.Match
}

// Today keeps matches whose kickoff falls on now's calendar date in loc.
func Today(ms []matches.Match, now time.Time, loc *time.Location) []matches.Match {
	out := make([]matches.Match, 0, len(ms))
	for _, m := range ms {
		kickoff, ok := m.Kickoff()
		if ok && timeutil.SameDate(kickoff, now, loc) {
			out = append(out, m)
		}
	}
	return out
}

// Upcoming keeps matches whose kickoff is strictly after now.
func Upcoming(ms []matches.Match, now time.Time) []matches.Match {
	out := make([]matches.Match, 0, len(ms))
	for _, m := range ms {
		kickoff, ok := m.Kickoff()
		if ok && kickoff.After(now) {
			out = append(out, m)
		}
	}
	return out
}

// Split computes both buckets in upstream order.
func Split(ms []matches.Match, now time.Time, loc *time.Location) Buckets {
	return Buckets{
		Today:    Today(ms, now, loc),
		Upcoming: Upcoming(ms, now),
	}
}
