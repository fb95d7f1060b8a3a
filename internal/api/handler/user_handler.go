package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-api/internal/core/ports"
)

// UserHandler handles profile and credential maintenance for the caller's
// own account.
type UserHandler struct {
	authService ports.AuthService
}

func NewUserHandler(authService ports.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// Get returns the caller's own profile.
//
// @Summary      Get own profile
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /user/ [get]
func (h *UserHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Profile(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// ChangePassword verifies the current password and replaces it.
//
// @Summary      Change own password
// @Tags         user
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  changePasswordRequest  true  "Current and new password"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /user/password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ChangePassword(c.Request().Context(), identity.UserID, req.Password, req.NewPassword); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdatePhoneNumber stores a new phone number on the caller's profile.
//
// @Summary      Update own phone number
// @Tags         user
// @Security     BearerAuth
// @Param        phone_number  path  string  true  "New phone number"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /user/phonenumber/{phone_number} [put]
func (h *UserHandler) UpdatePhoneNumber(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	phoneNumber := c.Param("phone_number")
	if phoneNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "phone number is required")
	}

	if err := h.authService.UpdatePhoneNumber(c.Request().Context(), identity.UserID, phoneNumber); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
