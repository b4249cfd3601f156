package providers

import "context"

// MatchProvider fetches the raw match list from an upstream source.
// Implementations return the upstream body unchanged; it must be a valid JSON document.
type MatchProvider interface {
	FetchMatches(ctx context.Context) ([]byte, error)
}

// ProviderFunc adapts a plain function to MatchProvider.
type ProviderFunc func(ctx context.Context) ([]byte, error)

func (f ProviderFunc) FetchMatches(ctx context.Context) ([]byte, error) {
	return f(ctx)
}
