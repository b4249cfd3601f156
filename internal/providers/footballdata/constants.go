package footballdata

import "time"

const (
	providerName = "footballdata"

	defaultBaseURL     = "https://api.football-data.org/v4"
	defaultHTTPTimeout = 10 * time.Second
	// Upstream result cap; the relay never paginates beyond it.
	matchLimit = 10

	authHeader      = "X-Auth-Token"
	resetHeader     = "X-RequestCounter-Reset"
	availableHeader = "X-Requests-Available-Minute"

	maxBodyBytes  = 4 << 20
	maxErrorBytes = 512
)
