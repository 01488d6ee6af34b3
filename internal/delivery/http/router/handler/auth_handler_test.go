package handler

import (
	"net/http"
	"testing"

	"orda/internal/domain/entity"
	ucmocks "orda/internal/mocks/usecase"
	"orda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register_Success(t *testing.T) {
	mockUserUC := ucmocks.NewMockUserUsecase(t)
	handler := &AuthHandler{uc: mockUserUC, logger: newTestLogger()}

	user := &entity.User{ID: uuid.New(), Email: "alice@example.com"}
	mockUserUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Email: "alice@example.com", Password: "password123"}).
		Return(&usecase.RegisterOutput{User: user}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"password123"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice@example.com")
}

func TestAuthHandler_Register_RejectsInvalidEmail(t *testing.T) {
	mockUserUC := ucmocks.NewMockUserUsecase(t)
	handler := &AuthHandler{uc: mockUserUC, logger: newTestLogger()}

	c, _ := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"email":"not-an-email","password":"password123"}`)

	err := handler.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAuthHandler_Login_RefreshesProfileLocale(t *testing.T) {
	mockUserUC := ucmocks.NewMockUserUsecase(t)
	mockProfileUC := ucmocks.NewMockProfileUsecase(t)
	handler := &AuthHandler{uc: mockUserUC, profileUC: mockProfileUC, logger: newTestLogger()}

	user := &entity.User{ID: uuid.New(), Email: "alice@example.com"}
	mockUserUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "alice@example.com", Password: "password123", Country: "NG"}).
		Return(&usecase.LoginOutput{AccessToken: "access", RefreshToken: "refresh", User: user}, nil)
	mockProfileUC.EXPECT().
		EnsureProfile(mock.Anything, user.ID, user.Email).
		Return(&entity.Profile{UserID: user.ID}, nil)
	mockProfileUC.EXPECT().
		UpsertLocale(mock.Anything, user.ID, "NG").
		Return(nil)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"password123","country":"NG"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access_token")
	assert.Contains(t, rec.Body.String(), "refresh_token")
}

func TestAuthHandler_Login_ProfileUpkeepFailureDoesNotFailLogin(t *testing.T) {
	mockUserUC := ucmocks.NewMockUserUsecase(t)
	mockProfileUC := ucmocks.NewMockProfileUsecase(t)
	handler := &AuthHandler{uc: mockUserUC, profileUC: mockProfileUC, logger: newTestLogger()}

	user := &entity.User{ID: uuid.New(), Email: "alice@example.com"}
	mockUserUC.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(&usecase.LoginOutput{AccessToken: "access", RefreshToken: "refresh", User: user}, nil)
	mockProfileUC.EXPECT().
		EnsureProfile(mock.Anything, user.ID, user.Email).
		Return(nil, errors.New("profiles table unavailable"))

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"password123","country":"NG"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	mockUserUC := ucmocks.NewMockUserUsecase(t)
	handler := &AuthHandler{uc: mockUserUC, logger: newTestLogger()}

	mockUserUC.EXPECT().
		Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "refresh"}).
		Return(nil)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/logout", `{"refresh_token":"refresh"}`)

	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
