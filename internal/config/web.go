package config

// WebConfig controls the browser-facing side of the service.
type WebConfig struct {
	StaticDir       string   // build output served in production
	DisplayTimezone string   // IANA zone for "today" and card times
	AllowedOrigins  []string // CORS origins for /api routes
}

func loadWeb() WebConfig {
	return WebConfig{
		StaticDir:       envOrDefault(envStaticDir, defaultStaticDir),
		DisplayTimezone: envOrDefault(envDisplayTZ, defaultDisplayTZ),
		AllowedOrigins:  listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
	}
}
