package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"yourlog/internal/service"
)

// UserHandler bundles user HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserDeleteRequest represents an account removal request.
type UserDeleteRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the projection returned after registration. The credential
// never appears in a response.
type UserResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Register godoc
// @Summary Register a new user
// @Tags user
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /user [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.Register(c.Request().Context(), req.Email, req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, UserResponse{
		Email:    user.Email,
		Username: user.Username,
	})
}

// Delete godoc
// @Summary Delete the authenticated user and everything they own
// @Tags user
// @Accept json
// @Param request body UserDeleteRequest true "Credentials"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Router /user [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	var req UserDeleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.Remove(c.Request().Context(), req.Email, req.Password); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
