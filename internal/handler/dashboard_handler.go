package handler

import (
	"errors"

	apperrors "skillswap/internal/errors"
	"skillswap/internal/service"
	"skillswap/pkg/response"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles HTTP requests for the dashboard view.
type DashboardHandler struct {
	service service.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service service.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetDashboard godoc
// @Summary      Per-user dashboard
// @Description  Return the user's profile, their sent and received swap requests, and rating counts
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  models.Dashboard
// @Failure      404  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /dashboard/{id} [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	id := c.Param("id")

	dashboard, err := h.service.GetDashboard(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, dashboard)
}
