package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-reading-plan/internal/catalog"
	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/services"
	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/workers"
)

var fixedNow = time.Date(2026, time.January, 5, 9, 30, 0, 0, time.UTC)

// brokenProgressRepository loads fine but never saves.
type brokenProgressRepository struct {
	*repository.InMemoryProgressRepository
}

func (brokenProgressRepository) Save(ctx context.Context, userID string, p domain.UserProgress) error {
	return errors.New("connection refused")
}

type testServer struct {
	router *gin.Engine
	retry  *workers.SaveRetryWorker
}

func newTestServer(t *testing.T, progressRepo domain.ProgressRepository) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop().Sugar()
	users := repository.NewInMemoryUserRepository()
	if progressRepo == nil {
		progressRepo = repository.NewInMemoryProgressRepository()
	}

	tiers, err := domain.ParseQuotaTiers(catalog.DefaultQuotaTiers)
	require.NoError(t, err)
	plans := services.NewPlanService(services.PlanConfig{
		Year:             catalog.DefaultYear,
		Catalog:          catalog.Bible(),
		ReservedLeadDays: catalog.DefaultReservedLeadDays,
		QuotaTiers:       tiers,
	})

	tokens := services.NewTokenService("handler-test-secret", "kanso-test", time.Hour, users)
	locks := workers.NewUserLocks()
	retry := workers.NewSaveRetryWorker(progressRepo, locks, time.Hour, 10, log)
	progress := services.NewProgressService(progressRepo, plans, locks, retry, log)
	clock := func() time.Time { return fixedNow }

	router := NewRouter(RouterDependencies{
		AuthHandler:     NewAuthHandler(services.NewAuthService(users), tokens, log),
		PlanHandler:     NewPlanHandler(plans, clock, log),
		ProgressHandler: NewProgressHandler(progress, clock, log),
		Tokens:          tokens,
		StartTime:       time.Now(),
		Logger:          log,
	})

	return &testServer{router: router, retry: retry}
}

func (s *testServer) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// signUp registers a password account and returns its access token.
func (s *testServer) signUp(t *testing.T, email string) string {
	t.Helper()

	w := s.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email":    email,
		"name":     "Reader",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp sessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token.AccessToken)
	return resp.Token.AccessToken
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
