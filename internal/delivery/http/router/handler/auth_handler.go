// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"orda/internal/delivery/http/response"
	"orda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// currentUserID reads the authenticated user ID set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	uc        usecase.UserUsecase
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, profileUC usecase.ProfileUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:        uc,
		profileUC: profileUC,
		logger:    logger,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Country  string `json:"country"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Register handles the customer registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "User registered successfully")
}

// Login handles the login request. On success it also provisions the
// profile if missing and refreshes the stored locale from the request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	output, err := h.uc.Login(ctx, &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Country:  req.Country,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// Profile upkeep must not break an already issued session.
	if _, err := h.profileUC.EnsureProfile(ctx, output.User.ID, output.User.Email); err != nil {
		h.logger.Warn("failed to provision profile on login",
			slog.String("user_id", output.User.ID.String()),
			slog.Any("error", err))
	} else if req.Country != "" {
		if err := h.profileUC.UpsertLocale(ctx, output.User.ID, req.Country); err != nil {
			h.logger.Warn("failed to refresh profile locale on login",
				slog.String("user_id", output.User.ID.String()),
				slog.Any("error", err))
		}
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"user":          output.User,
	}, "Login successful")
}

// RefreshToken handles the token refresh request.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"access_token": output.AccessToken,
	}, "Token refreshed successfully")
}

// Logout handles the logout request. It is idempotent for already
// revoked tokens.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), &usecase.LogoutInput{
		RefreshToken: req.RefreshToken,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}
