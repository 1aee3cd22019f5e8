package handlers

import (
	"errors"
	"net/http"

	"modamart/internal/models"
	"modamart/internal/services"

	"github.com/labstack/echo/v4"
)

type AuthHandlers struct {
	userService services.UserService
}

func NewAuthHandlers(userService services.UserService) *AuthHandlers {
	return &AuthHandlers{userService: userService}
}

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup always creates a cashier. Privileged accounts are created by an
// admin through POST /v1/users; the endpoint never trusts a caller-chosen
// role.
func (h *AuthHandlers) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	user, err := h.userService.Register(c.Request().Context(), req.Username, req.Password, models.RoleCashier)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, user)
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandlers) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	token, err := h.userService.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid username or password")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to authenticate")
	}
	return c.JSON(http.StatusOK, map[string]string{"token": token})
}
