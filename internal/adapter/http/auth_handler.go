package http

import (
	"net/http"

	"koperasi-loan-service/internal/adapter/accurate"
	"koperasi-loan-service/internal/domain/actor"
	"koperasi-loan-service/internal/usecase/auth"
	"koperasi-loan-service/internal/usecase/dashboard"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	auth      *auth.Usecase
	dashboard *dashboard.Usecase
	directory actor.Directory
	accurate  *accurate.Client
}

func NewAuthHandler(a *auth.Usecase, d *dashboard.Usecase, dir actor.Directory, client *accurate.Client) *AuthHandler {
	return &AuthHandler{auth: a, dashboard: d, directory: dir, accurate: client}
}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	// Password is accepted for forward compatibility; identity is
	// established against the employee directory.
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.auth.Login(c.Request().Context(), req.Username)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Login successful",
		"token":     dto.Token,
		"user_type": dto.UserType,
		"user":      dto.User,
	})
}

func (h *AuthHandler) AuthStatus(c echo.Context) error {
	if err := h.accurate.Ready(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"authenticated": false,
			"message":       "Accurate.id authentication required",
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"authenticated": true,
		"message":       "Accurate.id is authenticated and ready",
	})
}

// Dashboard returns the member's directory record plus the freshly
// computed outstanding balance.
func (h *AuthHandler) Dashboard(c echo.Context) error {
	a, ok := ActorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	dto, err := h.dashboard.EmployeeDashboard(c.Request().Context(), a.EmployeeID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AuthHandler) Employees(c echo.Context) error {
	employees, err := h.directory.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, employees)
}
