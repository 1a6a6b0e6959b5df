package handler

import (
	"log/slog"
	"net/http"

	"challengehub/internal/delivery/api/response"
	deliverycontext "challengehub/internal/delivery/context"
	"challengehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration and login.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest carries no validate tags: presence is checked by the
// usecase after the uniqueness lookups.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserIDResponse answers register and login. The userId is the caller's only credential.
type UserIDResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// Register handles POST /register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		h.log(c).Debug("Rejected register body", slog.Any("error", err))

		return response.InvalidInput(c)
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, UserIDResponse{
		Message: "user registered successfully",
		UserID:  output.UserID,
	})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		h.log(c).Debug("Rejected login body", slog.Any("error", err))

		return response.InvalidInput(c)
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, UserIDResponse{
		Message: "login successful",
		UserID:  output.UserID,
	})
}

func (h *AuthHandler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}
