package config

const (
	envPort           = "PORT"
	envNodeEnv        = "NODE_ENV"
	envAppEnv         = "APP_ENV"
	envStaticDir      = "STATIC_DIR"
	envProvider       = "PROVIDER"
	envDisplayTZ      = "DISPLAY_TIMEZONE"
	envCORSOrigins    = "CORS_ALLOWED_ORIGINS"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envFdBaseURL      = "FOOTBALL_DATA_BASE_URL"
	envFdAPIKey       = "FOOTBALL_DATA_API_KEY"
	envFdHTTPTimeout  = "FOOTBALL_DATA_TIMEOUT"
	envDotenvPath     = "DOTENV_PATH"
	productionEnvName = "production"

	defaultPort        = "5000"
	defaultProvider    = "footballdata"
	defaultStaticDir   = "client/build"
	defaultDisplayTZ   = "UTC"
	defaultCORSOrigins = "*"
	defaultMetricsPort = "9090"
	defaultDotenvPath  = ".env"
	defaultServiceName = "football-matches-service"
)
