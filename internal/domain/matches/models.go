package matches

import (
	"encoding/json"
	"time"
)

// Status mirrors the upstream lifecycle values for a fixture.
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusTimed     Status = "TIMED"
	StatusInPlay    Status = "IN_PLAY"
	StatusPaused    Status = "PAUSED"
	StatusFinished  Status = "FINISHED"
	StatusPostponed Status = "POSTPONED"
	StatusCancelled Status = "CANCELLED"
)

// Team is one side of a fixture. A zero ID means the upstream did not know the team yet.
type Team struct {
	ID        int    `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	ShortName string `json:"shortName,omitempty"`
	Crest     string `json:"crest,omitempty"`
}

// Competition identifies the league or cup a fixture belongs to.
type Competition struct {
	ID     int    `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Code   string `json:"code,omitempty"`
	Emblem string `json:"emblem,omitempty"`
}

// Match is a single fixture as published by the upstream API.
type Match struct {
	ID          int          `json:"id"`
	UTCDate     string       `json:"utcDate"`
	Status      Status       `json:"status,omitempty"`
	HomeTeam    *Team        `json:"homeTeam,omitempty"`
	AwayTeam    *Team        `json:"awayTeam,omitempty"`
	Competition *Competition `json:"competition,omitempty"`
}

// Kickoff parses the scheduled start time. ok is false when the timestamp is missing or malformed.
func (m Match) Kickoff() (t time.Time, ok bool) {
	if m.UTCDate == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(time.RFC3339, m.UTCDate)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// MatchesResponse is the body of GET /api/matches. Fields the service does not
// interpret are kept raw so the payload can be inspected without loss.
type MatchesResponse struct {
	Filters   json.RawMessage `json:"filters,omitempty"`
	ResultSet json.RawMessage `json:"resultSet,omitempty"`
	Matches   []Match         `json:"matches"`

	// Skipped lists entries of "matches" that could not be decoded.
	Skipped []SkippedMatch `json:"-"`
}

// SkippedMatch records one undecodable entry by its position in the upstream list.
type SkippedMatch struct {
	Index int
	Err   error
}

type wireResponse struct {
	Filters   json.RawMessage   `json:"filters,omitempty"`
	ResultSet json.RawMessage   `json:"resultSet,omitempty"`
	Matches   []json.RawMessage `json:"matches"`
}

// Decode parses a relay payload into a MatchesResponse. The envelope must be
// valid; a malformed entry inside "matches" is skipped and reported in Skipped
// so the remaining matches still render.
func Decode(raw []byte) (MatchesResponse, error) {
	var wire wireResponse
	if err := json.Unmarshal(raw, &wire); err != nil {
		return MatchesResponse{}, err
	}
	resp := MatchesResponse{
		Filters:   wire.Filters,
		ResultSet: wire.ResultSet,
		Matches:   make([]Match, 0, len(wire.Matches)),
	}
	for i, item := range wire.Matches {
		var m Match
		if err := json.Unmarshal(item, &m); err != nil {
			resp.Skipped = append(resp.Skipped, SkippedMatch{Index: i, Err: err})
			continue
		}
		resp.Matches = append(resp.Matches, m)
	}
	return resp, nil
}
