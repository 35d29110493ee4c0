package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	platformmetrics "roident/internal/platform/metrics"
	ratelimitmw "roident/internal/ratelimit/middleware"
	"roident/internal/validation/handler"
	dErrors "roident/pkg/domain-errors"
	"roident/pkg/platform/httputil"
	"roident/pkg/platform/middleware/metadata"
	"roident/pkg/platform/middleware/request"
	"roident/pkg/platform/middleware/requesttime"
	"roident/pkg/requestcontext"
)

// Deps are the pieces NewRouter wires together. RateLimit, HTTPMetrics,
// MetricsHandler and Clock are optional.
type Deps struct {
	Logger         *slog.Logger
	Validation     *handler.Handler
	RateLimit      *ratelimitmw.Middleware
	HTTPMetrics    *platformmetrics.Metrics
	MetricsHandler http.Handler
	Clock          func() time.Time
}

type healthResponse struct {
	Status string `json:"status"`
}

// NewRouter wires every public endpoint. Middleware order matters: the
// request ID and client metadata must exist before the rate limiter and the
// handlers log anything.
func NewRouter(d Deps) http.Handler {
	clock := d.Clock
	if clock == nil {
		clock = time.Now
	}

	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(recoverer(d.Logger))
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.WithClock(clock))
	if d.HTTPMetrics != nil {
		r.Use(d.HTTPMetrics.Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "no such endpoint"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusMethodNotAllowed, httputil.ErrorResponse{Error: "method_not_allowed"})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	})
	if d.MetricsHandler != nil {
		r.Handle("/metrics", d.MetricsHandler)
	}

	r.Group(func(r chi.Router) {
		if d.RateLimit != nil {
			r.Use(d.RateLimit.RateLimit)
		}
		d.Validation.Register(r)
	})
	return r
}

// recoverer turns a panic into a logged internal error response.
func recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.ErrorContext(r.Context(), "panic serving request",
						"request_id", requestcontext.RequestID(r.Context()),
						"path", r.URL.Path,
						"panic", rec,
					)
					httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "internal error"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
