package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/services"
)

type errorResponse struct {
	Error string `json:"error"`
}

func handleError(c *gin.Context, logger *zap.SugaredLogger, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, errorResponse{Error: "unauthorized access"})

	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, services.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})

	case errors.Is(err, domain.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, errorResponse{Error: "email already exists"})

	case errors.Is(err, domain.ErrCredentialMismatch):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDayNotFound), errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})

	case errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrNameEmpty),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrProviderEmpty),
		errors.Is(err, domain.ErrInvalidUserID),
		errors.Is(err, domain.ErrInvalidDayID),
		errors.Is(err, domain.ErrInvalidMonth):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})

	default:
		logger.Errorw("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
