package config

import "time"

const (
	defaultFdBaseURL     = "https://api.football-data.org/v4"
	defaultFdHTTPTimeout = 10 * time.Second
)

// FootballDataConfig controls how we talk to the football-data.org API.
type FootballDataConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func loadFootballData() FootballDataConfig {
	return FootballDataConfig{
		BaseURL: envOrDefault(envFdBaseURL, defaultFdBaseURL),
		APIKey:  envOrDefault(envFdAPIKey, ""),
		Timeout: durationEnvOrDefault(envFdHTTPTimeout, defaultFdHTTPTimeout),
	}
}
