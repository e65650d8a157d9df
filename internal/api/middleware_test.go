package api_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/remaimber-it/mcquiz/internal/api"
)

func okMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /question-sets", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func TestRateLimiter(t *testing.T) {
	limiter := api.NewRateLimiter(0.001, 2)
	h := limiter.Middleware(okMux())

	codes := make([]int, 3)
	for i := range codes {
		req := httptest.NewRequest(http.MethodGet, "/question-sets", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes[i] = rec.Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Another client has its own bucket.
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestMetrics(t *testing.T) {
	metrics := api.NewMetrics()
	h := metrics.Middleware(okMux())

	for _, path := range []string{"/question-sets", "/question-sets", "/nope"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",route="GET /question-sets",status="200"} 2`)
	assert.Contains(t, body, `http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.Contains(t, body, "http_request_duration_seconds_bucket")
}

func TestCORS(t *testing.T) {
	h := api.CORS("https://quiz.example")(okMux())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/question-sets", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://quiz.example", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/question-sets", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://quiz.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	api.Logging(logger)(okMux()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/question-sets", nil))

	assert.Contains(t, buf.String(), `"path":"/question-sets"`)
	assert.Contains(t, buf.String(), `"status":200`)
}
