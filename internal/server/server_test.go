package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"example.com/diet-planner/backend/internal/catalog"
	"example.com/diet-planner/backend/internal/config"
	"example.com/diet-planner/backend/internal/planner"
	"example.com/diet-planner/backend/internal/share"
)

const planPayload = `{"age":25,"gender":"male","height_cm":170,"weight_kg":70,"goal":"weight loss","meal_frequency":4}`

func newTestServer(burst int) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{RateLimit: config.RateLimitConfig{PerMinute: 1, Burst: burst}}
	service := planner.New(catalog.Default(), planner.WithLogger(logger))
	tokens := share.NewTokenManager("test-secret", "diet-planner", time.Hour)
	return New(cfg, logger, service, tokens)
}

func postPlan(handler http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans", strings.NewReader(planPayload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// TestRoutesShareFlow проверяет создание плана и открытие его по ссылке через роутер.
func TestRoutesShareFlow(t *testing.T) {
	handler := newTestServer(10)

	rec := postPlan(handler)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected request id header")
	}

	var created struct {
		ShareToken string `json:"share_token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	for _, path := range []string{
		"/api/v1/plans/shared/" + created.ShareToken,
		"/api/v1/plans/shared/" + created.ShareToken + "/export/csv?type=groceries",
		"/api/v1/foods",
		"/health",
	} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

// TestPlanRateLimit проверяет ограничение частоты создания планов.
func TestPlanRateLimit(t *testing.T) {
	handler := newTestServer(2)

	for i := 0; i < 2; i++ {
		if rec := postPlan(handler); rec.Code != http.StatusCreated {
			t.Fatalf("request %d: expected 201, got %d", i, rec.Code)
		}
	}

	if rec := postPlan(handler); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/foods", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected foods to stay available, got %d", rec.Code)
	}
}
