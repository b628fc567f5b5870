package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/services"
)

type ProgressHandler struct {
	svc    *services.ProgressService
	clock  Clock
	logger *zap.SugaredLogger
}

func NewProgressHandler(svc *services.ProgressService, clock Clock, logger *zap.SugaredLogger) *ProgressHandler {
	return &ProgressHandler{
		svc:    svc,
		clock:  clock,
		logger: logger,
	}
}

// RegisterRoutes expects a group already behind AuthMiddleware.
func (h *ProgressHandler) RegisterRoutes(router *gin.RouterGroup) {
	progress := router.Group("/progress")
	{
		progress.GET("", h.Get)
		progress.POST("/days/:id/toggle", h.Toggle)
		progress.GET("/stats", h.Stats)
	}
}

// Get godoc
// @Summary     Completed day IDs for the signed-in user
// @Tags        progress
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} domain.UserProgress
// @Failure     401 {object} errorResponse
// @Router      /progress [get]
func (h *ProgressHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}

	progress, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

// Toggle godoc
// @Summary     Flip completion of one day
// @Description Returns 202 when the change is kept in memory but not yet stored.
// @Tags        progress
// @Produce     json
// @Security    BearerAuth
// @Param       id  path     string true "day ID (YYYY-MM-DD)"
// @Success     200 {object} services.ToggleResult
// @Success     202 {object} services.ToggleResult
// @Failure     401 {object} errorResponse
// @Router      /progress/days/{id}/toggle [post]
func (h *ProgressHandler) Toggle(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}

	result, err := h.svc.Toggle(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	status := http.StatusOK
	if !result.Persisted {
		status = http.StatusAccepted
	}
	c.JSON(status, result)
}

// Stats godoc
// @Summary     Progress summary as of a date
// @Tags        progress
// @Produce     json
// @Security    BearerAuth
// @Param       date query    string false "YYYY-MM-DD"
// @Success     200  {object} domain.ProgressStats
// @Failure     400  {object} errorResponse
// @Router      /progress/stats [get]
func (h *ProgressHandler) Stats(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}

	date, err := dateParam(c, h.clock)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	stats, err := h.svc.Stats(c.Request.Context(), userID, date)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
