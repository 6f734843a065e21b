// Package handler contains HTTP handlers for the API.
package handler

import (
	"errors"
	"strconv"

	apperrors "skillswap/internal/errors"
	"skillswap/internal/models"
	"skillswap/internal/service"
	"skillswap/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service service.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service service.UserServicer) *UserHandler {
	return &UserHandler{service: service}
}

// CreateUser godoc
// @Summary      Register a profile
// @Description  Create a new user profile; the email must not be registered yet
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateUserRequest  true  "Profile to create"
// @Success      200      {object}  models.User
// @Failure      400      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}

// ListUsers godoc
// @Summary      List profiles
// @Description  List users, optionally filtered by skill, location, and visibility
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        skill        query     string  false  "Case-insensitive skill substring"
// @Param        location     query     string  false  "Case-insensitive location substring"
// @Param        public_only  query     bool    false  "Restrict to public profiles"  default(true)
// @Success      200          {array}   models.User
// @Failure      400          {object}  response.ErrorResponse
// @Failure      500          {object}  response.ErrorResponse
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	publicOnly, err := strconv.ParseBool(c.DefaultQuery("public_only", "true"))
	if err != nil {
		response.BadRequest(c, "public_only must be a boolean")
		return
	}

	filter := models.ListUsersFilter{
		Skill:      c.Query("skill"),
		Location:   c.Query("location"),
		PublicOnly: publicOnly,
	}

	users, err := h.service.ListUsers(c.Request.Context(), filter)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, users)
}

// GetUser godoc
// @Summary      Get profile by ID
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  models.User
// @Failure      404  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}

// UpdateUser godoc
// @Summary      Update profile
// @Description  Partially update a profile; only provided fields change
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "User ID"
// @Param        request  body      models.UpdateUserRequest  true  "Fields to update"
// @Success      200      {object}  models.User
// @Failure      400      {object}  response.ErrorResponse
// @Failure      404      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}
