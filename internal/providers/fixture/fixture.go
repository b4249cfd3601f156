package fixture

import (
	"context"
	"encoding/json"
	"time"

	"football-matches-service/internal/domain/matches"
)

// Provider returns a static set of matches useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchMatches returns a deterministic payload: one match this evening (UTC)
// and two tomorrow, one of them without a known away team.
func (p *Provider) FetchMatches(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	day := p.now().UTC().Truncate(24 * time.Hour)
	tomorrow := day.Add(24 * time.Hour)
	pl := &matches.Competition{ID: 2021, Name: "Premier League", Code: "PL"}
	pd := &matches.Competition{ID: 2014, Name: "Primera Division", Code: "PD"}

	payload := matches.MatchesResponse{
		Matches: []matches.Match{
			{
				ID:          1001,
				UTCDate:     day.Add(20 * time.Hour).Format(time.RFC3339),
				Status:      matches.StatusTimed,
				HomeTeam:    &matches.Team{ID: 57, Name: "Arsenal FC", ShortName: "Arsenal"},
				AwayTeam:    &matches.Team{ID: 61, Name: "Chelsea FC", ShortName: "Chelsea"},
				Competition: pl,
			},
			{
				ID:          1002,
				UTCDate:     tomorrow.Add(15 * time.Hour).Format(time.RFC3339),
				Status:      matches.StatusTimed,
				HomeTeam:    &matches.Team{ID: 86, Name: "Real Madrid CF", ShortName: "Real Madrid"},
				AwayTeam:    &matches.Team{ID: 81, Name: "FC Barcelona", ShortName: "Barça"},
				Competition: pd,
			},
			{
				ID:          1003,
				UTCDate:     tomorrow.Add(17*time.Hour + 30*time.Minute).Format(time.RFC3339),
				Status:      matches.StatusScheduled,
				HomeTeam:    &matches.Team{ID: 65, Name: "Manchester City FC", ShortName: "Man City"},
				Competition: pl,
			},
		},
	}
	return json.Marshal(payload)
}
