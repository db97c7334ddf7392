package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medconnect-api/internal/delivery/dto"
	"medconnect-api/internal/delivery/http/middleware"
	"medconnect-api/internal/usecase"
	"medconnect-api/pkg/response"
	"medconnect-api/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ usecase.AuthUsecase = (*mockAuthUsecase)(nil)

type mockAuthUsecase struct {
	RegisterFunc       func(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error)
	LoginFunc          func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	LogoutFunc         func(ctx context.Context, userID uint, accessTokenID, refreshToken string) error
	RefreshTokenFunc   func(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUserFunc func(ctx context.Context, userID uint) (*dto.UserResponse, error)
	ListUsersFunc      func(ctx context.Context) (*dto.UserListResponse, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	return m.RegisterFunc(ctx, req)
}

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.LoginFunc(ctx, req)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, userID uint, accessTokenID, refreshToken string) error {
	return m.LogoutFunc(ctx, userID, accessTokenID, refreshToken)
}

func (m *mockAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	return m.RefreshTokenFunc(ctx, req)
}

func (m *mockAuthUsecase) GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	return m.GetCurrentUserFunc(ctx, userID)
}

func (m *mockAuthUsecase) ListUsers(ctx context.Context) (*dto.UserListResponse, error) {
	return m.ListUsersFunc(ctx)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestRegisterHandler(t *testing.T) {
	uc := &mockAuthUsecase{
		RegisterFunc: func(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
			return &dto.UserResponse{ID: 1, Email: req.Email, Name: req.Name}, nil
		},
	}
	h := NewAuthHandler(uc, validator.NewValidator())

	body := `{"email":"ana@example.com","name":"Ana","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Status)
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	uc := &mockAuthUsecase{
		RegisterFunc: func(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
			return nil, usecase.ErrEmailAlreadyExists
		},
	}
	h := NewAuthHandler(uc, validator.NewValidator())

	body := `{"email":"ana@example.com","name":"Ana","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusNotAcceptable, rec.Code)
}

func TestRegisterHandler_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&mockAuthUsecase{}, validator.NewValidator())

	body := `{"email":"not-an-email","name":"A","password":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Status)
	assert.NotNil(t, resp.Error)
}

func TestLoginHandler(t *testing.T) {
	uc := &mockAuthUsecase{
		LoginFunc: func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
			return &dto.TokenResponse{Token: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
		},
	}
	h := NewAuthHandler(uc, validator.NewValidator())

	body := `{"email":"ana@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"access"`)
}

func TestLoginHandler_UnknownUser(t *testing.T) {
	uc := &mockAuthUsecase{
		LoginFunc: func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
			return nil, usecase.ErrUserNotFound
		},
	}
	h := NewAuthHandler(uc, validator.NewValidator())

	body := `{"email":"nobody@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	uc := &mockAuthUsecase{
		LoginFunc: func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
			return nil, usecase.ErrInvalidPassword
		},
	}
	h := NewAuthHandler(uc, validator.NewValidator())

	body := `{"email":"ana@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Incorrect password")
}

func TestLogoutHandler(t *testing.T) {
	var gotUserID uint
	var gotTokenID, gotRefresh string
	uc := &mockAuthUsecase{
		LogoutFunc: func(ctx context.Context, userID uint, accessTokenID, refreshToken string) error {
			gotUserID = userID
			gotTokenID = accessTokenID
			gotRefresh = refreshToken
			return nil
		},
	}
	h := NewAuthHandler(uc, validator.NewValidator())

	body := `{"refresh_token":"the-refresh"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", strings.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, uint(7))
	ctx = context.WithValue(ctx, middleware.TokenIDKey, "token-abc")
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(7), gotUserID)
	assert.Equal(t, "token-abc", gotTokenID)
	assert.Equal(t, "the-refresh", gotRefresh)
}

func TestLogoutHandler_NoIdentity(t *testing.T) {
	h := NewAuthHandler(&mockAuthUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRefreshTokenHandler_Revoked(t *testing.T) {
	uc := &mockAuthUsecase{
		RefreshTokenFunc: func(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
			return nil, usecase.ErrTokenRevoked
		},
	}
	h := NewAuthHandler(uc, validator.NewValidator())

	body := `{"refresh_token":"spent"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh-token", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.RefreshToken(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetCurrentUserHandler(t *testing.T) {
	uc := &mockAuthUsecase{
		GetCurrentUserFunc: func(ctx context.Context, userID uint) (*dto.UserResponse, error) {
			return &dto.UserResponse{ID: userID, Email: "ana@example.com", Name: "Ana"}, nil
		},
	}
	h := NewAuthHandler(uc, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, uint(7)))
	rec := httptest.NewRecorder()
	h.GetCurrentUser(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ana@example.com")
}
