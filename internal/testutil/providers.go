package testutil

import (
	"context"
	"sync/atomic"

	"football-matches-service/internal/providers"
)

// StaticProvider returns the same body on every call.
type StaticProvider struct {
	Body []byte
}

func (p StaticProvider) FetchMatches(ctx context.Context) ([]byte, error) {
	_ = ctx
	return p.Body, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchMatches(ctx context.Context) ([]byte, error) {
	_ = ctx
	return nil, p.Err
}

// UnavailableProvider returns ErrUpstreamUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchMatches(ctx context.Context) ([]byte, error) {
	_ = ctx
	return nil, providers.ErrUpstreamUnavailable
}

// CountingProvider wraps another provider and counts calls.
type CountingProvider struct {
	Inner providers.MatchProvider
	calls atomic.Int32
}

func (p *CountingProvider) FetchMatches(ctx context.Context) ([]byte, error) {
	p.calls.Add(1)
	return p.Inner.FetchMatches(ctx)
}

// Calls reports how many fetches went through.
func (p *CountingProvider) Calls() int {
	return int(p.calls.Load())
}
