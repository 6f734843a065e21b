package handler

import (
	"skillswap/internal/models"
	"skillswap/internal/service"
	"skillswap/pkg/response"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles HTTP requests for skill search.
type SearchHandler struct {
	service service.UserServicer
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(service service.UserServicer) *SearchHandler {
	return &SearchHandler{service: service}
}

// SearchSkills godoc
// @Summary      Search skills
// @Description  Return the deduplicated, alphabetically sorted skills across public profiles matching the query
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        query  query     string  true  "Case-insensitive skill substring (min length 1)"
// @Success      200    {object}  models.SkillSearchResponse
// @Failure      400    {object}  response.ErrorResponse
// @Failure      500    {object}  response.ErrorResponse
// @Router       /search/skills [get]
func (h *SearchHandler) SearchSkills(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.BadRequest(c, "query is required")
		return
	}

	skills, err := h.service.SearchSkills(c.Request.Context(), query)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, models.SkillSearchResponse{Skills: skills})
}
