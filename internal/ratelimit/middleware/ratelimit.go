package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"roident/internal/ratelimit"
	"roident/internal/ratelimit/metrics"
	dErrors "roident/pkg/domain-errors"
	"roident/pkg/platform/httputil"
	"roident/pkg/requestcontext"
)

type Middleware struct {
	limiter  ratelimit.Checker
	metrics  *metrics.Metrics
	logger   *slog.Logger
	disabled bool
}

type Option func(*Middleware)

// WithDisabled disables rate limiting entirely (for tests and local runs).
func WithDisabled(disabled bool) Option {
	return func(m *Middleware) {
		m.disabled = disabled
	}
}

// WithMetrics records allowed and rejected requests.
func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *Middleware) {
		m.metrics = mt
	}
}

func New(limiter ratelimit.Checker, logger *slog.Logger, opts ...Option) *Middleware {
	m := &Middleware{
		limiter: limiter,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.disabled || limiter == nil {
		logger.Info("rate limiting disabled")
	}
	return m
}

// RateLimit throttles requests per client IP. It must run after the
// metadata and requesttime middleware.
func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.disabled || m.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		ip := requestcontext.ClientIP(ctx)
		d, err := m.limiter.Check(ctx, ip, requestcontext.Now(ctx))
		if err != nil {
			// Fail open on backend errors.
			m.logger.ErrorContext(ctx, "failed to check rate limit",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
			next.ServeHTTP(w, r)
			return
		}
		if d.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		}

		if !d.Allowed {
			m.metrics.IncrementRejected()
			m.logger.WarnContext(ctx, "rate limit exceeded",
				"request_id", requestcontext.RequestID(ctx),
				"path", r.URL.Path,
			)
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(d.RetryAfter.Seconds()))))
			httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "too many requests, please try again later"))
			return
		}

		m.metrics.IncrementAllowed()
		next.ServeHTTP(w, r)
	})
}
