package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubValidator struct {
	tokens map[string]string
}

func (s stubValidator) ValidateToken(ctx context.Context, token string) (string, error) {
	if id, ok := s.tokens[token]; ok {
		return id, nil
	}
	return "", errors.New("invalid token")
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Parallel()

	validator := stubValidator{tokens: map[string]string{"good-token": "user-123"}}

	router := gin.New()
	router.Use(AuthMiddleware(validator))
	router.GET("/protected", func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.String(http.StatusInternalServerError, "UserID not found in context")
			return
		}
		c.String(http.StatusOK, "Hello "+userID)
	})

	do := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("Success: Valid Token", func(t *testing.T) {
		w := do("Bearer good-token")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Hello user-123", w.Body.String())
	})

	t.Run("Success: Scheme is case-insensitive", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do("bearer good-token").Code)
	})

	t.Run("Fail: Missing Authorization Header", func(t *testing.T) {
		w := do("")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "authorization header required")
	})

	t.Run("Fail: Invalid Header Format", func(t *testing.T) {
		for _, h := range []string{"Bearer", "Token 12345", "Bearer12345", "Bearer ", "Bearer a b"} {
			w := do(h)
			assert.Equal(t, http.StatusUnauthorized, w.Code, "Should fail for header: "+h)
		}
	})

	t.Run("Fail: Rejected Token", func(t *testing.T) {
		w := do("Bearer forged-token")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid or expired token")
	})
}
