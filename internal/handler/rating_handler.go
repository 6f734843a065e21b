package handler

import (
	"errors"

	apperrors "skillswap/internal/errors"
	"skillswap/internal/models"
	"skillswap/internal/service"
	"skillswap/pkg/response"

	"github.com/gin-gonic/gin"
)

// RatingHandler handles HTTP requests for rating operations.
type RatingHandler struct {
	service service.RatingServicer
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(service service.RatingServicer) *RatingHandler {
	return &RatingHandler{service: service}
}

// CreateRating godoc
// @Summary      Rate a completed swap
// @Description  Record a 1-5 star rating for the other participant of a completed swap and refresh their average
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Param        rater_id  query     string                      true  "Rating user ID"
// @Param        request   body      models.CreateRatingRequest  true  "Rating to create"
// @Success      200       {object}  models.Rating
// @Failure      400       {object}  response.ErrorResponse
// @Failure      403       {object}  response.ErrorResponse
// @Failure      500       {object}  response.ErrorResponse
// @Router       /ratings [post]
func (h *RatingHandler) CreateRating(c *gin.Context) {
	raterID := c.Query("rater_id")
	if raterID == "" {
		response.BadRequest(c, "rater_id is required")
		return
	}

	var req models.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rating, err := h.service.CreateRating(c.Request.Context(), raterID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotParticipant):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrSwapNotCompleted),
			errors.Is(err, apperrors.ErrAlreadyRated),
			errors.Is(err, apperrors.ErrRatingOutOfRange):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, rating)
}
