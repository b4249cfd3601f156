package footballdata

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"football-matches-service/internal/providers"
)

const samplePayload = `{
	"filters": {"limit": 10},
	"resultSet": {"count": 1},
	"matches": [
		{
			"id": 497410,
			"utcDate": "2024-08-17T14:00:00Z",
			"status": "TIMED",
			"homeTeam": {"id": 57, "name": "Arsenal FC"},
			"awayTeam": {"id": 76, "name": "Wolverhampton Wanderers FC"},
			"competition": {"id": 2021, "name": "Premier League"}
		}
	]
}`

func TestFetchMatchesSendsTokenAndLimit(t *testing.T) {
	var captured *http.Request
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, samplePayload), nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com/v4/",
		APIKey:     "secret",
		HTTPClient: &http.Client{Transport: rt},
	})

	body, err := client.FetchMatches(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if captured.URL.Path != "/v4/matches" {
		t.Fatalf("expected /v4/matches path, got %s", captured.URL.Path)
	}
	if captured.Method != http.MethodGet {
		t.Fatalf("expected GET, got %s", captured.Method)
	}
	if got := captured.URL.Query().Get("limit"); got != "10" {
		t.Fatalf("expected limit=10, got %s", got)
	}
	if got := captured.Header.Get("X-Auth-Token"); got != "secret" {
		t.Fatalf("expected auth token header, got %q", got)
	}
	if string(body) != samplePayload {
		t.Fatalf("expected body to be returned byte-for-byte, got %s", body)
	}
}

func TestFetchMatchesOmitsTokenWhenUnset(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if _, ok := req.Header["X-Auth-Token"]; ok {
			t.Fatalf("expected no auth header without api key")
		}
		return jsonResponse(http.StatusOK, `{"matches":[]}`), nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	if _, err := client.FetchMatches(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestFetchMatchesHandlesNon2xx(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusForbidden, `{"message":"The resource you are looking for is restricted."}`), nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	_, err := client.FetchMatches(context.Background())

	var statusErr *providers.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", statusErr.StatusCode)
	}
	if !errors.Is(err, providers.ErrUpstreamUnavailable) {
		t.Fatalf("expected error to wrap ErrUpstreamUnavailable")
	}
}

func TestFetchMatchesMapsTooManyRequests(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, `{"message":"You reached your request limit."}`)
		resp.Header.Set("X-RequestCounter-Reset", "42")
		resp.Header.Set("X-Requests-Available-Minute", "0")
		return resp, nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	_, err := client.FetchMatches(context.Background())

	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rl.RetryAfter != 42*time.Second || rl.Remaining != "0" {
		t.Fatalf("unexpected rate limit details %+v", rl)
	}
}

func TestFetchMatchesErrorsNeverCarryAPIKey(t *testing.T) {
	const key = "super-secret-token"
	responses := []func() (*http.Response, error){
		func() (*http.Response, error) {
			return jsonResponse(http.StatusUnauthorized, `{"message":"bad token"}`), nil
		},
		func() (*http.Response, error) { return jsonResponse(http.StatusTooManyRequests, `{}`), nil },
		func() (*http.Response, error) { return jsonResponse(http.StatusOK, "not json"), nil },
		func() (*http.Response, error) { return nil, errors.New("connection reset") },
	}
	for _, respond := range responses {
		rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) { return respond() })
		client := NewClient(Config{BaseURL: "http://example.com", APIKey: key, HTTPClient: &http.Client{Transport: rt}})

		_, err := client.FetchMatches(context.Background())
		if err == nil {
			t.Fatalf("expected error")
		}
		if strings.Contains(err.Error(), key) {
			t.Fatalf("api key leaked into error: %v", err)
		}
	}
}

func TestFetchMatchesRejectsInvalidJSON(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "<html>maintenance</html>"), nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	if _, err := client.FetchMatches(context.Background()); !errors.Is(err, providers.ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestFetchMatchesWrapsTransportErrors(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	if _, err := client.FetchMatches(context.Background()); !errors.Is(err, providers.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestFetchMatchesReturnsContextErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(Config{BaseURL: srv.URL})
	if _, err := client.FetchMatches(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFetchMatchesAgainstHTTPServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Auth-Token") != "k" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, samplePayload)
	}))
	defer srv.Close()

	body, err := NewClient(Config{BaseURL: srv.URL, APIKey: "k"}).FetchMatches(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(body) != samplePayload {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestNewClientSetsDefaultHTTPClient(t *testing.T) {
	c := NewClient(Config{})
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client")
	}
	if httpClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout, got %s", httpClient.Timeout)
	}
	if c.baseURL != defaultBaseURL {
		t.Fatalf("expected default base url, got %s", c.baseURL)
	}
}

func TestNewClientHonorsTimeout(t *testing.T) {
	c := NewClient(Config{Timeout: 2 * time.Second})
	if got := c.httpClient.(*http.Client).Timeout; got != 2*time.Second {
		t.Fatalf("expected 2s timeout, got %s", got)
	}
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
