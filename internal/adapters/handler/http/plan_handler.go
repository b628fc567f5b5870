package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/services"
)

// PlanHandler serves the generated plan. It needs no authentication.
type PlanHandler struct {
	svc    *services.PlanService
	clock  Clock
	logger *zap.SugaredLogger
}

func NewPlanHandler(svc *services.PlanService, clock Clock, logger *zap.SugaredLogger) *PlanHandler {
	return &PlanHandler{
		svc:    svc,
		clock:  clock,
		logger: logger,
	}
}

type monthResponse struct {
	Year  int                 `json:"year"`
	Month int                 `json:"month"`
	Days  []domain.ReadingDay `json:"days"`
}

func (h *PlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plan := router.Group("/plan")
	{
		plan.GET("/today", h.Today)
		plan.GET("/days/:id", h.Day)
		plan.GET("/months/:month", h.Month)
		plan.GET("/verify", h.Verify)
	}
}

// Today godoc
// @Summary     Reading for a date
// @Description Defaults to the server's current date. Dates outside the plan year map onto it.
// @Tags        plan
// @Produce     json
// @Param       date query    string false "YYYY-MM-DD"
// @Success     200  {object} services.TodayReading
// @Failure     400  {object} errorResponse
// @Router      /plan/today [get]
func (h *PlanHandler) Today(c *gin.Context) {
	date, err := dateParam(c, h.clock)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.svc.Today(date))
}

// Day godoc
// @Summary     One reading day by ID
// @Tags        plan
// @Produce     json
// @Param       id  path     string true "day ID (YYYY-MM-DD)"
// @Success     200 {object} domain.ReadingDay
// @Failure     404 {object} errorResponse
// @Router      /plan/days/{id} [get]
func (h *PlanHandler) Day(c *gin.Context) {
	day, err := h.svc.Day(c.Param("id"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, day)
}

// Month godoc
// @Summary     Every reading day of a month
// @Tags        plan
// @Produce     json
// @Param       month path     int true "1-12"
// @Success     200   {object} monthResponse
// @Failure     400   {object} errorResponse
// @Router      /plan/months/{month} [get]
func (h *PlanHandler) Month(c *gin.Context) {
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		handleError(c, h.logger, domain.ErrInvalidMonth)
		return
	}

	days, err := h.svc.Month(month)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, monthResponse{
		Year:  h.svc.Plan().Year,
		Month: month,
		Days:  days,
	})
}

// Verify godoc
// @Summary     Compare catalog, quota and assignment totals
// @Tags        plan
// @Produce     json
// @Success     200 {object} services.PlanVerification
// @Router      /plan/verify [get]
func (h *PlanHandler) Verify(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Verify())
}
