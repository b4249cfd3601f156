package providers

import (
	"context"
	"log/slog"

	"football-matches-service/internal/logging"
)

// logWithProvider emits a log entry if a logger is available and always includes the provider name.
// The request-scoped logger from ctx wins over the fallback.
func logWithProvider(ctx context.Context, fallback *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	logger := logging.FromContext(ctx, fallback)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider))
	logger.Log(ctx, level, msg, args...)
}
