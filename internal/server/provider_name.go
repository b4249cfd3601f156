package server

import "strings"

// normalizeProviderName keeps naming consistent across selection, metrics and logs.
func normalizeProviderName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// providerLabel is the metrics/log label for the configured provider.
func providerLabel(raw string) string {
	if name := normalizeProviderName(raw); name != "" {
		return name
	}
	return providerFootballData
}
