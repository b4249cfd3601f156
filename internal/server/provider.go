package server

import (
	"log/slog"

	"football-matches-service/internal/config"
	"football-matches-service/internal/providers"
	"football-matches-service/internal/providers/fixture"
	"football-matches-service/internal/providers/footballdata"
)

const (
	providerFootballData = "footballdata"
	providerFixture      = "fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.MatchProvider {
	switch normalizeProviderName(cfg.Provider) {
	case providerFootballData, "":
		if cfg.FootballData.APIKey == "" && logger != nil {
			logger.Warn("football-data api key not set, upstream will likely reject requests")
		}
		return footballdata.NewClient(footballdata.Config{
			BaseURL: cfg.FootballData.BaseURL,
			APIKey:  cfg.FootballData.APIKey,
			Timeout: cfg.FootballData.Timeout,
		})
	case providerFixture:
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
