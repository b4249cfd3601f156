package view

import (
	"strconv"
	"time"

	"football-matches-service/internal/domain/matches"
)

const (
	PlaceholderTeam        = "TBD"
	PlaceholderCompetition = "Unknown Competition"

	crestBaseURL = "https://crests.football-data.org/"
	// FallbackCrest replaces a crest image that fails to load.
	FallbackCrest = "/assets/crest-placeholder.svg"

	timeLayout = "15:04"
	dateLayout = "Jan 2, 2006"
)

// TeamSlot is one side of a card.
type TeamSlot struct {
	Name          string
	CrestURL      string
	FallbackCrest string
}

// Card is the display form of one match.
type Card struct {
	ID          int
	Competition string
	Home        TeamSlot
	Away        TeamSlot
	Time        string
	Date        string
}

// NewCard formats m for display in loc, substituting placeholders for missing data.
func NewCard(m matches.Match, loc *time.Location) Card {
	if loc == nil {
		loc = time.UTC
	}
	card := Card{
		ID:          m.ID,
		Competition: PlaceholderCompetition,
		Home:        teamSlot(m.HomeTeam),
		Away:        teamSlot(m.AwayTeam),
	}
	if m.Competition != nil && m.Competition.Name != "" {
		card.Competition = m.Competition.Name
	}
	if kickoff, ok := m.Kickoff(); ok {
		local := kickoff.In(loc)
		card.Time = local.Format(timeLayout)
		card.Date = local.Format(dateLayout)
	}
	return card
}

// NewCards formats a list in order.
func NewCards(ms []matches.Match, loc *time.Location) []Card {
	cards := make([]Card, 0, len(ms))
	for _, m := range ms {
		cards = append(cards, NewCard(m, loc))
	}
	return cards
}

// CrestURL builds the CDN address of a team crest; unknown teams use "default".
func CrestURL(teamID int) string {
	if teamID <= 0 {
		return crestBaseURL + "default.svg"
	}
	return crestBaseURL + strconv.Itoa(teamID) + ".svg"
}

func teamSlot(t *matches.Team) TeamSlot {
	slot := TeamSlot{Name: PlaceholderTeam, CrestURL: CrestURL(0), FallbackCrest: FallbackCrest}
	if t == nil {
		return slot
	}
	if t.Name != "" {
		slot.Name = t.Name
	}
	slot.CrestURL = CrestURL(t.ID)
	return slot
}
