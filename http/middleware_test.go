package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-calc/logger"
	"mortgage-calc/repository"
	"mortgage-calc/service"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(60, 2)
	defer rl.Stop()
	ctx := context.Background()

	assert.True(t, rl.Allow(ctx, "1.1.1.1"))
	assert.True(t, rl.Allow(ctx, "1.1.1.1"))
	assert.False(t, rl.Allow(ctx, "1.1.1.1"))

	// otro cliente tiene su propio bucket
	assert.True(t, rl.Allow(ctx, "2.2.2.2"))
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	defer rl.Stop()

	rl.Allow(context.Background(), "1.1.1.1")
	rl.cleanup(time.Now().Add(2 * bucketCleanupThreshold))

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Empty(t, rl.clients)
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}

type failingCounter struct{}

func (failingCounter) Incr(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("redis down")
}

func TestWindowLimiter_Allow(t *testing.T) {
	now := time.Date(2026, time.January, 1, 12, 0, 30, 0, time.UTC)
	l := NewWindowLimiter(repository.NewMemoryCounter(), 2, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	assert.True(t, l.Allow(ctx, "1.1.1.1"))
	assert.True(t, l.Allow(ctx, "1.1.1.1"))
	assert.False(t, l.Allow(ctx, "1.1.1.1"))

	now = now.Add(time.Minute)
	assert.True(t, l.Allow(ctx, "1.1.1.1"), "new window")
}

func TestWindowLimiter_FailsOpen(t *testing.T) {
	l := NewWindowLimiter(failingCounter{}, 1, time.Minute)
	assert.True(t, l.Allow(context.Background(), "1.1.1.1"))
	assert.True(t, l.Allow(context.Background(), "1.1.1.1"))
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	defer rl.Stop()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RateLimitMiddleware(rl, next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logger.RequestID(r.Context())
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "from-upstream")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, "from-upstream", seen)
}

func TestNewRouter(t *testing.T) {
	rl := NewRateLimiter(60, 5)
	defer rl.Stop()

	renderer := NewRenderer(nil)
	router := NewRouter(Handlers{
		Amortization: NewAmortizationHandler(service.NewAmortizationService(nil), renderer),
		Mortgage:     NewMortgageHandler(service.NewMortgageService(nil), renderer),
		DeedStamps:   NewDeedStampHandler(service.NewDeedStampService(nil), renderer),
		Scenarios:    NewScenarioHandler(service.NewScenarioService(nil, 10, 2), renderer),
	}, rl)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	w = httptest.NewRecorder()
	body := `{"salesPrice": "300000", "loanAmount": "250000", "jurisdiction": "miami-dade", "propertyType": "condo"}`
	router.ServeHTTP(w, post("/calculators/deed-stamps", body))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"surtaxApplies":true`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
