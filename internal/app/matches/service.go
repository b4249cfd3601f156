package matches

import (
	"context"
	"fmt"
	"log/slog"

	domainmatches "football-matches-service/internal/domain/matches"
	"football-matches-service/internal/logging"
	"football-matches-service/internal/providers"
)

// Service is the relay: every call goes straight to the upstream provider.
// Nothing is cached between calls.
type Service struct {
	provider providers.MatchProvider
}

// NewService constructs a Service backed by the provided upstream.
func NewService(provider providers.MatchProvider) *Service {
	return &Service{provider: provider}
}

// Raw returns the upstream payload unchanged.
func (s *Service) Raw(ctx context.Context) ([]byte, error) {
	if s == nil || s.provider == nil {
		return nil, providers.ErrUpstreamUnavailable
	}
	return s.provider.FetchMatches(ctx)
}

// Matches fetches the upstream payload and decodes the match list. Entries that
// fail to decode are dropped and logged with the request logger.
func (s *Service) Matches(ctx context.Context) ([]domainmatches.Match, error) {
	raw, err := s.Raw(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := domainmatches.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode matches: %w", err)
	}
	if len(resp.Skipped) > 0 {
		logger := logging.FromContext(ctx, nil)
		for _, skipped := range resp.Skipped {
			logging.Warn(logger, "skipped undecodable match",
				slog.Int("index", skipped.Index),
				slog.Any(logging.FieldError, skipped.Err),
			)
		}
	}
	return resp.Matches, nil
}
