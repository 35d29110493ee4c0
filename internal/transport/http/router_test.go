package httptransport

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	platformmetrics "roident/internal/platform/metrics"
	"roident/internal/ratelimit"
	ratelimitmw "roident/internal/ratelimit/middleware"
	"roident/internal/validation"
	"roident/internal/validation/handler"
	"roident/internal/validation/metrics"
	"roident/pkg/platform/middleware/request"
	"roident/pkg/testutil"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T, burst int) http.Handler {
	t.Helper()
	logger := testutil.DiscardLogger()
	reg := prometheus.NewRegistry()

	svc := validation.New(logger, validation.WithMetrics(metrics.New(reg)))
	return NewRouter(Deps{
		Logger:         logger,
		Validation:     handler.New(svc, logger),
		RateLimit:      ratelimitmw.New(ratelimit.New(1, burst, time.Minute), logger),
		HTTPMetrics:    platformmetrics.New(reg),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Clock:          func() time.Time { return fixedNow },
	})
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, 10)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(request.HeaderRequestID))
}

func TestRequestIDIsEchoed(t *testing.T) {
	router := newTestRouter(t, 10)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(request.HeaderRequestID, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(request.HeaderRequestID))
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, 10)

	rec := testutil.DoRequest(router, httptest.NewRequest(http.MethodGet, "/nope", nil))
	testutil.AssertStatusAndError(t, rec, http.StatusNotFound, "not_found")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cnp/validate", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestValidationEndpointsAreRateLimited(t *testing.T) {
	router := newTestRouter(t, 2)

	send := func() int {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/cui/validate", `{"value":"19"}`)
		req.RemoteAddr = "192.0.2.1:1234"
		return testutil.DoRequest(router, req).Code
	}
	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())

	// Health checks are outside the limited group.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCNPValidateThroughRouter(t *testing.T) {
	router := newTestRouter(t, 10)

	rec := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/cnp/validate", `{"value":" 1900101123457 "}`))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := testutil.UnmarshalResponse[handler.CNPResponse](t, rec)
	require.True(t, resp.Valid)
	require.NotNil(t, resp.CNP)
	assert.Equal(t, "1990-01-01", resp.CNP.BirthDate)
	assert.Equal(t, 34, resp.CNP.Age)
	assert.Equal(t, "12", resp.CNP.CountyCode)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t, 10)

	testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/cnp/validate", `{"value":"1900101123457"}`))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `roident_validation_outcomes_total{kind="cnp",reason="",valid="true"} 1`)
	assert.Contains(t, body, `roident_http_requests_total{method="POST",route="/v1/cnp/validate",status="200"} 1`)
}

func TestPanicIsRecovered(t *testing.T) {
	logger := testutil.DiscardLogger()
	h := recoverer(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}
