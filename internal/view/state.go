package view

import (
	"errors"

	"football-matches-service/internal/domain/matches"
)

// Phase is the lifecycle position of a page's single fetch.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "error"
	default:
		return "loading"
	}
}

// ErrAlreadyResolved is returned when a terminal state is reached twice.
var ErrAlreadyResolved = errors.New("fetch state already resolved")

// FetchState tracks the outcome of the one fetch a page load performs.
// The zero value is Loading.
type FetchState struct {
	phase   Phase
	message string
	matches []matches.Match
}

// Phase returns the current phase.
func (s *FetchState) Phase() Phase { return s.phase }

// Message returns the error text once Failed.
func (s *FetchState) Message() string { return s.message }

// Matches returns the fetched list once Loaded.
func (s *FetchState) Matches() []matches.Match { return s.matches }

// Resolve moves Loading to Loaded.
func (s *FetchState) Resolve(ms []matches.Match) error {
	if s.phase != PhaseLoading {
		return ErrAlreadyResolved
	}
	if ms == nil {
		ms = []matches.Match{}
	}
	s.phase = PhaseLoaded
	s.matches = ms
	return nil
}

// Fail moves Loading to Failed with a user-facing message.
func (s *FetchState) Fail(message string) error {
	if s.phase != PhaseLoading {
		return ErrAlreadyResolved
	}
	s.phase = PhaseFailed
	s.message = message
	return nil
}
