package services

import (
	"context"
	"go-parking-management/config"
	"go-parking-management/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

type AuthServiceMock struct {
	mock.Mock
}

func NewAuthServiceMock() *AuthServiceMock {
	return &AuthServiceMock{}
}

func (m *AuthServiceMock) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *AuthServiceMock) Login(ctx context.Context, req model.LoginRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *AuthServiceMock) VerifyOTP(ctx context.Context, req model.VerifyOTPRequest) (*model.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthResponse), args.Error(1)
}

func (m *AuthServiceMock) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(jwt.MapClaims), args.Error(1)
}

func (m *AuthServiceMock) EnsureAdmin(ctx context.Context, admin config.AdminConfig) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}
