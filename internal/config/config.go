package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	Environment  string
	Provider     string
	FootballData FootballDataConfig
	Web          WebConfig
	Metrics      MetricsConfig
}

// Production reports whether the built UI should be served from disk.
func (c Config) Production() bool {
	return c.Environment == productionEnvName
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file is applied first when present; variables already set in the
// process environment take precedence over it.
func Load() Config {
	_ = godotenv.Load(envOrDefault(envDotenvPath, defaultDotenvPath))

	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		Environment:  loadEnvironment(),
		Provider:     envOrDefault(envProvider, defaultProvider),
		FootballData: loadFootballData(),
		Web:          loadWeb(),
		Metrics:      loadMetrics(),
	}
}

func loadEnvironment() string {
	if env := envOrDefault(envAppEnv, ""); env != "" {
		return normalizeEnvironment(env)
	}
	return normalizeEnvironment(envOrDefault(envNodeEnv, ""))
}
