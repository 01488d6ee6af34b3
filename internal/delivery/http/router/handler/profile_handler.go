package handler

import (
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"orda/internal/delivery/http/response"
	"orda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxAvatarSize caps avatar uploads at 5MB.
const maxAvatarSize = 5 << 20

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

type updateUsernameRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
}

// GetProfile returns the caller's profile, provisioning it if missing.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.uc.EnsureProfile(c.Request().Context(), userID, "")
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// UpdateUsername handles the username change request.
func (h *ProfileHandler) UpdateUsername(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req updateUsernameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid username input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.uc.UpdateUsername(c.Request().Context(), userID, req.Username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Username updated successfully")
}

// UploadAvatar handles the multipart avatar upload, replacing any
// previously stored image.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Avatar file is required")
	}
	if fileHeader.Size > maxAvatarSize {
		return response.BadRequest(c, "FILE_TOO_LARGE", "Avatar must be 5MB or smaller")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded avatar")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarSize+1))
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded avatar")
	}
	if len(data) > maxAvatarSize {
		return response.BadRequest(c, "FILE_TOO_LARGE", "Avatar must be 5MB or smaller")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	profile, err := h.uc.UploadAvatar(c.Request().Context(), userID, &usecase.UploadAvatarInput{
		Data:        data,
		ContentType: contentType,
		Extension:   strings.ToLower(filepath.Ext(fileHeader.Filename)),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Avatar uploaded successfully")
}

// RemoveAvatar deletes the stored avatar, if any.
func (h *ProfileHandler) RemoveAvatar(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.uc.RemoveAvatar(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Avatar removed successfully")
}
