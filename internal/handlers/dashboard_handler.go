package handlers

import (
	"net/http"
	"time"

	"household-expenses/internal/analytics"
	"household-expenses/internal/dto"
	"household-expenses/internal/errors"
	"household-expenses/internal/models"
	"household-expenses/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the aggregated dashboard
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
	currency         string
	now              func() time.Time
}

func NewDashboardHandler(dashboardService services.DashboardServiceInterface, currency string) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		currency:         currency,
		now:              time.Now,
	}
}

// GetDashboard returns summary, breakdowns, trend, budgets and balance in one response
// @Summary Dashboard
// @Description The budget overview always covers the current month
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param period query string false "current, previous or all" default(current)
// @Param member query string false "Family member; matches payer or beneficiary"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} errors.ErrorResponse "Invalid period or member - VALIDATION_009 or VALIDATION_008"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.DashboardQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	period, err := analytics.ParsePeriod(query.Period)
	if err != nil {
		return SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails(err.Error()))
	}

	var member *models.FamilyMember
	if query.Member != "" {
		m, err := models.ParseFamilyMember(query.Member)
		if err != nil {
			return SendError(c, errors.ValidationInvalidMember, errors.WithDetails(err.Error()))
		}
		member = &m
	}

	dashboard, err := h.dashboardService.GetDashboard(userID, period, member)
	if err != nil {
		return sendServiceError(c, err)
	}

	month := period.BudgetMonth(h.now()).Format(models.MonthLayout)
	return c.JSON(http.StatusOK, dto.NewDashboardResponse(*dashboard, month, h.currency))
}
