package handlers

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"football-matches-service/internal/app/matches"
	"football-matches-service/internal/logging"
	"football-matches-service/internal/metrics"
	"football-matches-service/internal/timeutil"
	"football-matches-service/internal/view"
)

// FetchFailedMessage is the only failure detail callers ever see.
const FetchFailedMessage = "Failed to fetch matches"

type nowFunc func() time.Time

// Handler wires HTTP routes to the relay service and the match page.
type Handler struct {
	svc      *matches.Service
	renderer *view.Renderer
	metrics  *metrics.Recorder
	logger   *slog.Logger
	loc      *time.Location
	now      nowFunc
}

// NewHandler constructs a Handler with defaults. An unknown displayTZ falls back to UTC.
func NewHandler(svc *matches.Service, renderer *view.Renderer, recorder *metrics.Recorder, logger *slog.Logger, displayTZ string) *Handler {
	if renderer == nil {
		renderer = view.MustRenderer()
	}
	loc := timeutil.ResolveTimezone(displayTZ)
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		svc:      svc,
		renderer: renderer,
		metrics:  recorder,
		logger:   logger,
		loc:      loc,
		now:      time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet && r.Method != nethttp.MethodHead {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Matches relays the upstream match list. The body is passed through untouched
// on success; every failure collapses to one fixed error object. HEAD does not
// reach the upstream.
func (h *Handler) Matches(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet && r.Method != nethttp.MethodHead {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if r.Method == nethttp.MethodHead {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusOK)
		return
	}
	logger := loggerFromContext(r, h.logger)

	body, err := h.svc.Raw(r.Context())
	if err != nil {
		logging.Error(logger, "fetch matches failed", err)
		writeJSON(w, nethttp.StatusInternalServerError, map[string]string{"error": FetchFailedMessage}, h.logger)
		return
	}
	logging.Info(logger, "relayed matches", "bytes", len(body))
	writeRaw(w, nethttp.StatusOK, body, h.logger)
}

// Page renders the match page. The loading indicator is flushed before the
// single upstream fetch; the terminal view follows in the same response.
func (h *Handler) Page(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet && r.Method != nethttp.MethodHead {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if r.Method == nethttp.MethodHead {
		w.WriteHeader(nethttp.StatusOK)
		return
	}

	logger := loggerFromContext(r, h.logger)
	loc := h.location(r)

	w.WriteHeader(nethttp.StatusOK)
	if err := h.renderer.WriteLoading(w); err != nil {
		logging.Warn(logger, "write loading view failed", logging.FieldError, err)
		return
	}
	if f, ok := w.(nethttp.Flusher); ok {
		f.Flush()
	}

	var state view.FetchState
	if ms, err := h.svc.Matches(r.Context()); err != nil {
		logging.Error(logger, "fetch matches for page failed", err)
		_ = state.Fail(FetchFailedMessage)
	} else {
		_ = state.Resolve(ms)
	}
	if h.metrics != nil {
		h.metrics.RecordPageRender(state.Phase().String())
	}

	page := view.BuildPage(&state, h.now(), loc)
	if err := h.renderer.WriteResult(w, page); err != nil {
		logging.Warn(logger, "write result view failed", logging.FieldError, err)
		return
	}
	logging.Info(logger, "rendered match page",
		"phase", page.Phase,
		logging.FieldTimezone, loc.String(),
		logging.FieldCount, len(state.Matches()),
	)
}

// location honours ?tz= when it names a valid zone.
func (h *Handler) location(r *nethttp.Request) *time.Location {
	if loc := timeutil.ResolveTimezone(r.URL.Query().Get("tz")); loc != nil {
		return loc
	}
	return h.loc
}
