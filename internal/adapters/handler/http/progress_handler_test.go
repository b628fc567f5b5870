package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/services"
)

func TestProgressHandler_RequiresAuth(t *testing.T) {
	srv := newTestServer(t, nil)

	assert.Equal(t, http.StatusUnauthorized, srv.do(http.MethodGet, "/api/v1/progress", nil, "").Code)
	assert.Equal(t, http.StatusUnauthorized, srv.do(http.MethodPost, "/api/v1/progress/days/2026-01-03/toggle", nil, "").Code)
	assert.Equal(t, http.StatusUnauthorized, srv.do(http.MethodGet, "/api/v1/progress/stats", nil, "not-a-token").Code)
}

func TestProgressHandler_Toggle(t *testing.T) {
	srv := newTestServer(t, nil)
	token := srv.signUp(t, "toggle@kanso.app")

	t.Run("Success: Toggle on then off", func(t *testing.T) {
		w := srv.do(http.MethodPost, "/api/v1/progress/days/2026-01-03/toggle", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		on := decode[services.ToggleResult](t, w)
		assert.True(t, on.Completed)
		assert.True(t, on.Persisted)
		assert.Equal(t, []string{"2026-01-03"}, on.Progress.IDs())

		w = srv.do(http.MethodPost, "/api/v1/progress/days/2026-01-03/toggle", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		off := decode[services.ToggleResult](t, w)
		assert.False(t, off.Completed)
		assert.Equal(t, 0, off.Progress.Len())
	})

	t.Run("Success: Progress lists completed days", func(t *testing.T) {
		srv.do(http.MethodPost, "/api/v1/progress/days/2026-01-04/toggle", nil, token)
		srv.do(http.MethodPost, "/api/v1/progress/days/2026-01-03/toggle", nil, token)

		w := srv.do(http.MethodGet, "/api/v1/progress", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"completed_days":["2026-01-03","2026-01-04"]}`, w.Body.String())
	})

	t.Run("Success: Users do not see each other's progress", func(t *testing.T) {
		other := srv.signUp(t, "other@kanso.app")

		w := srv.do(http.MethodGet, "/api/v1/progress", nil, other)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"completed_days":[]}`, w.Body.String())
	})
}

func TestProgressHandler_ToggleNotPersisted(t *testing.T) {
	srv := newTestServer(t, brokenProgressRepository{repository.NewInMemoryProgressRepository()})
	token := srv.signUp(t, "offline@kanso.app")

	w := srv.do(http.MethodPost, "/api/v1/progress/days/2026-01-03/toggle", nil, token)

	require.Equal(t, http.StatusAccepted, w.Code)
	res := decode[services.ToggleResult](t, w)
	assert.False(t, res.Persisted)
	assert.True(t, res.Completed)
	assert.Equal(t, 1, srv.retry.Len())

	w = srv.do(http.MethodGet, "/api/v1/progress", nil, token)
	assert.JSONEq(t, `{"completed_days":["2026-01-03"]}`, w.Body.String())
}

func TestProgressHandler_Stats(t *testing.T) {
	srv := newTestServer(t, nil)
	token := srv.signUp(t, "stats@kanso.app")

	for _, day := range []string{"2026-01-03", "2026-01-04", "2026-01-05"} {
		require.Equal(t, http.StatusOK, srv.do(http.MethodPost, "/api/v1/progress/days/"+day+"/toggle", nil, token).Code)
	}

	t.Run("Success: As of the clock", func(t *testing.T) {
		w := srv.do(http.MethodGet, "/api/v1/progress/stats", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		stats := decode[domain.ProgressStats](t, w)
		assert.Equal(t, 3, stats.CompletedDays)
		assert.Equal(t, 3, stats.CurrentStreak)
		assert.Equal(t, "2026-01-05", stats.TodayID)
		assert.True(t, stats.TodayCompleted)
	})

	t.Run("Success: Streak broken by a later date", func(t *testing.T) {
		w := srv.do(http.MethodGet, "/api/v1/progress/stats?date=2026-01-10", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		stats := decode[domain.ProgressStats](t, w)
		assert.Equal(t, 0, stats.CurrentStreak)
		assert.Equal(t, 3, stats.LongestStreak)
	})

	t.Run("Fail: Malformed date", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, srv.do(http.MethodGet, "/api/v1/progress/stats?date=tomorrow", nil, token).Code)
	})
}
