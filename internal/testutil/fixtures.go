package testutil

import (
	"encoding/json"
	"time"

	"football-matches-service/internal/domain/matches"
)

// SampleTeam builds a team with a stable name derived from id.
func SampleTeam(id int, name string) *matches.Team {
	return &matches.Team{ID: id, Name: name, ShortName: name}
}

// SampleMatch builds a timed Premier League match kicking off at the given instant.
func SampleMatch(id int, kickoff time.Time) matches.Match {
	return matches.Match{
		ID:          id,
		UTCDate:     kickoff.UTC().Format(time.RFC3339),
		Status:      matches.StatusTimed,
		HomeTeam:    SampleTeam(57, "Arsenal FC"),
		AwayTeam:    SampleTeam(61, "Chelsea FC"),
		Competition: &matches.Competition{ID: 2021, Name: "Premier League", Code: "PL"},
	}
}

// MatchesJSON encodes ms as an upstream /matches body; panics on encode failure.
func MatchesJSON(ms ...matches.Match) []byte {
	if ms == nil {
		ms = []matches.Match{}
	}
	body, err := json.Marshal(matches.MatchesResponse{Matches: ms})
	if err != nil {
		panic(err)
	}
	return body
}
