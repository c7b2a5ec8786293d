package handlers

import (
	"net/http"

	"household-expenses/internal/dto"
	"household-expenses/internal/errors"
	"household-expenses/internal/services"

	"github.com/labstack/echo/v4"
)

// ActivityHandler serves the household activity feed
type ActivityHandler struct {
	auditService services.AuditServiceInterface
}

func NewActivityHandler(auditService services.AuditServiceInterface) *ActivityHandler {
	return &ActivityHandler{auditService: auditService}
}

// ListActivity returns the user's audit entries, newest first
// @Summary Activity feed
// @Tags Activity
// @Security BearerAuth
// @Produce json
// @Param offset query int false "Entries to skip" default(0)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.ListActivityResponse
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Router /activity [get]
func (h *ActivityHandler) ListActivity(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var params dto.PaginationParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid pagination parameters"))
	}

	if err := c.Validate(params); err != nil {
		return err
	}

	if params.Limit == 0 {
		params.Limit = services.DefaultActivityLimit
	}

	logs, total, err := h.auditService.ListActivity(userID, params.Offset, params.Limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListActivityResponse{
		Entries: dto.NewActivityEntries(logs),
		Pagination: dto.PaginationInfo{
			HasMore: int64(params.Offset+len(logs)) < total,
			Offset:  params.Offset,
			Limit:   params.Limit,
			Total:   total,
		},
	})
}
