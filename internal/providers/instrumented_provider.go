package providers

import (
	"context"
	"log/slog"
	"time"

	"football-matches-service/internal/logging"
	"football-matches-service/internal/metrics"
)

// instrumentedProvider wraps a MatchProvider with latency/error metrics and logs.
// It makes exactly one upstream call per FetchMatches; failures are returned as-is.
type instrumentedProvider struct {
	inner   MatchProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
	name    string
	now     func() time.Time
}

// NewInstrumentedProvider wraps the given provider. name labels logs and metrics.
func NewInstrumentedProvider(inner MatchProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) MatchProvider {
	if name == "" {
		name = "provider"
	}
	return &instrumentedProvider{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		name:    name,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) FetchMatches(ctx context.Context) ([]byte, error) {
	if p.inner == nil {
		return nil, ErrUpstreamUnavailable
	}

	start := p.now()
	body, err := p.inner.FetchMatches(ctx)
	elapsed := p.now().Sub(start)

	p.metrics.RecordUpstreamAttempt(p.name, elapsed, err)
	if rl, ok := AsRateLimitError(err); ok {
		p.metrics.RecordRateLimit(p.name, rl.RetryAfter)
	}

	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "upstream fetch failed",
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any(logging.FieldError, err),
		)
		return nil, err
	}

	logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "upstream fetch succeeded",
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		slog.Int("bytes", len(body)),
	)
	return body, nil
}
