package handler

import (
	"errors"

	apperrors "skillswap/internal/errors"
	"skillswap/internal/models"
	"skillswap/internal/service"
	"skillswap/pkg/response"

	"github.com/gin-gonic/gin"
)

// SwapRequestHandler handles HTTP requests for swap request operations.
type SwapRequestHandler struct {
	service service.SwapRequestServicer
}

// NewSwapRequestHandler creates a new SwapRequestHandler.
func NewSwapRequestHandler(service service.SwapRequestServicer) *SwapRequestHandler {
	return &SwapRequestHandler{service: service}
}

// CreateSwapRequest godoc
// @Summary      Create swap request
// @Description  Propose a skill exchange to another user; starts as pending
// @Tags         swap-requests
// @Accept       json
// @Produce      json
// @Param        requester_id  query     string                           true  "Requesting user ID"
// @Param        request       body      models.CreateSwapRequestRequest  true  "Swap request to create"
// @Success      200           {object}  models.SwapRequest
// @Failure      400           {object}  response.ErrorResponse
// @Failure      404           {object}  response.ErrorResponse
// @Failure      500           {object}  response.ErrorResponse
// @Router       /swap-requests [post]
func (h *SwapRequestHandler) CreateSwapRequest(c *gin.Context) {
	requesterID := c.Query("requester_id")
	if requesterID == "" {
		response.BadRequest(c, "requester_id is required")
		return
	}

	var req models.CreateSwapRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	swap, err := h.service.CreateSwapRequest(c.Request.Context(), requesterID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrSelfSwap):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, swap)
}

// ListSwapRequests godoc
// @Summary      List swap requests
// @Description  List swap requests newest first, optionally scoped to one user (as requester or receiver)
// @Tags         swap-requests
// @Accept       json
// @Produce      json
// @Param        user_id  query     string  false  "User ID"
// @Success      200      {array}   models.SwapRequest
// @Failure      500      {object}  response.ErrorResponse
// @Router       /swap-requests [get]
func (h *SwapRequestHandler) ListSwapRequests(c *gin.Context) {
	requests, err := h.service.ListSwapRequests(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, requests)
}

// UpdateSwapRequest godoc
// @Summary      Update swap request status
// @Description  Set a new status on a swap request; any status may replace any other
// @Tags         swap-requests
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "Swap request ID"
// @Param        request  body      models.UpdateSwapRequestRequest  true  "New status"
// @Success      200      {object}  models.SwapRequest
// @Failure      400      {object}  response.ErrorResponse
// @Failure      404      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /swap-requests/{id} [put]
func (h *SwapRequestHandler) UpdateSwapRequest(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateSwapRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	swap, err := h.service.UpdateSwapRequestStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, apperrors.ErrSwapRequestNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, swap)
}

// DeleteSwapRequest godoc
// @Summary      Delete swap request
// @Description  Delete a swap request by ID; its ratings are left untouched
// @Tags         swap-requests
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Swap request ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /swap-requests/{id} [delete]
func (h *SwapRequestHandler) DeleteSwapRequest(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.DeleteSwapRequest(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrSwapRequestNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Message(c, "swap request deleted successfully")
}
