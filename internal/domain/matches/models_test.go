package matches

import (
	"testing"
	"time"
)

func TestKickoffParsesRFC3339(t *testing.T) {
	m := Match{UTCDate: "2024-08-16T19:00:00Z"}

	got, ok := m.Kickoff()
	if !ok {
		t.Fatal("expected kickoff to parse")
	}
	if !got.Equal(time.Date(2024, 8, 16, 19, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected kickoff %s", got)
	}
}

func TestKickoffRejectsMissingOrMalformed(t *testing.T) {
	for _, raw := range []string{"", "tomorrow", "2024-08-16"} {
		if _, ok := (Match{UTCDate: raw}).Kickoff(); ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestDecodeKeepsUnknownSectionsRaw(t *testing.T) {
	raw := []byte(`{
		"filters": {"limit": 10},
		"resultSet": {"count": 1},
		"matches": [
			{
				"id": 435943,
				"utcDate": "2024-08-16T19:00:00Z",
				"status": "TIMED",
				"homeTeam": {"id": 66, "name": "Manchester United FC", "crest": "https://crests.football-data.org/66.png"},
				"awayTeam": {"id": null, "name": null},
				"competition": {"id": 2021, "name": "Premier League", "code": "PL"}
			}
		]
	}`)

	resp, err := Decode(raw)
	if err != nil {
		t.Fatalf("expected decode to succeed, got %v", err)
	}
	if string(resp.ResultSet) != `{"count": 1}` {
		t.Fatalf("expected raw result set, got %s", resp.ResultSet)
	}
	if len(resp.Matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(resp.Matches))
	}
	m := resp.Matches[0]
	if m.HomeTeam == nil || m.HomeTeam.ID != 66 || m.Status != StatusTimed {
		t.Fatalf("unexpected match %+v", m)
	}
	if m.AwayTeam == nil || m.AwayTeam.ID != 0 || m.AwayTeam.Name != "" {
		t.Fatalf("expected null away team fields to decode as zero values, got %+v", m.AwayTeam)
	}
	if m.Competition == nil || m.Competition.Name != "Premier League" {
		t.Fatalf("unexpected competition %+v", m.Competition)
	}
}

func TestDecodeRejectsInvalidJSON(t *testing.T) {
	if _, err := Decode([]byte("{bad")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestDecodeSkipsMalformedEntries(t *testing.T) {
	raw := []byte(`{"matches":[
		{"id": 1, "utcDate": "2024-08-16T19:00:00Z", "homeTeam": {"id": 57, "name": "Arsenal FC"}},
		{"id": 2, "utcDate": "2024-08-16T19:00:00Z", "homeTeam": {"id": "n/a"}},
		{"id": 3, "utcDate": "2024-08-17T14:00:00Z"}
	]}`)

	resp, err := Decode(raw)
	if err != nil {
		t.Fatalf("expected envelope to decode, got %v", err)
	}
	if len(resp.Matches) != 2 || resp.Matches[0].ID != 1 || resp.Matches[1].ID != 3 {
		t.Fatalf("expected matches 1 and 3 kept in order, got %+v", resp.Matches)
	}
	if len(resp.Skipped) != 1 || resp.Skipped[0].Index != 1 || resp.Skipped[0].Err == nil {
		t.Fatalf("expected entry 1 reported as skipped, got %+v", resp.Skipped)
	}
}

func TestDecodeRejectsNonArrayMatches(t *testing.T) {
	if _, err := Decode([]byte(`{"matches": {"id": 1}}`)); err == nil {
		t.Fatal("expected error when matches is not a list")
	}
}
