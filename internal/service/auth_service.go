package service

import (
	"context"
	"errors"
	"fmt"
	"go-parking-management/config"
	"go-parking-management/internal/cache"
	"go-parking-management/internal/model"
	"go-parking-management/internal/queue"
	"go-parking-management/internal/repository"
	apperrors "go-parking-management/pkg/app_errors"
	"go-parking-management/pkg/logger"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	// Register creates an unverified account and emails it a login code.
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	// Login checks credentials and emails a fresh OTP; the token is only
	// issued after VerifyOTP.
	Login(ctx context.Context, req model.LoginRequest) error
	// VerifyOTP consumes the code and returns the signed JWT.
	VerifyOTP(ctx context.Context, req model.VerifyOTPRequest) (*model.AuthResponse, error)
	// ValidateToken parses and verifies a bearer token for the middleware.
	ValidateToken(tokenString string) (jwt.MapClaims, error)
	// EnsureAdmin seeds the administrator account on startup.
	EnsureAdmin(ctx context.Context, admin config.AdminConfig) error
}

type AuthServiceImpl struct {
	repository repository.UserRepository
	otpStore   cache.OTPStore
	mailQueue  queue.MailQueue
	jwtConfig  config.JWTConfig
}

func NewAuthService(
	userRepository repository.UserRepository,
	otpStore cache.OTPStore,
	mailQueue queue.MailQueue,
	jwtConfig config.JWTConfig,
) AuthService {
	return &AuthServiceImpl{
		repository: userRepository,
		otpStore:   otpStore,
		mailQueue:  mailQueue,
		jwtConfig:  jwtConfig,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashed),
		Role:      model.RoleUser,
		Verified:  false,
	}

	created, err := s.repository.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.issueOTP(ctx, created.Email); err != nil {
		return nil, err
	}

	created.Password = ""
	return created, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req model.LoginRequest) error {
	user, err := s.repository.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrInvalidCredentials
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return apperrors.ErrInvalidCredentials
	}

	return s.issueOTP(ctx, user.Email)
}

// issueOTP stores a fresh code and queues the email carrying it. The code is
// useless without the email, so a publish failure burns the code and fails
// the request.
func (s *AuthServiceImpl) issueOTP(ctx context.Context, email string) error {
	code, err := s.otpStore.Issue(ctx, email)
	if err != nil {
		return err
	}

	job := &queue.EmailJob{
		To:   email,
		Kind: queue.KindOTP,
		Code: code,
	}

	if err := s.mailQueue.PublishEmail(ctx, job); err != nil {
		logger.WithComponent("auth_service").Error("failed to publish otp email", zap.String("to", email), zap.Error(err))
		return apperrors.ErrInternalServerError
	}

	return nil
}

func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, req model.VerifyOTPRequest) (*model.AuthResponse, error) {
	if err := s.otpStore.Verify(ctx, req.Email, req.OTP); err != nil {
		return nil, err
	}

	user, err := s.repository.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if !user.Verified {
		if err := s.repository.MarkVerified(ctx, user.ID); err != nil {
			return nil, err
		}
		user.Verified = true
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &model.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}

func (s *AuthServiceImpl) signToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   fmt.Sprintf("%d", user.ID),
		"email": user.Email,
		"role":  string(user.Role),
		"jti":   uuid.New().String(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.jwtConfig.Expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (s *AuthServiceImpl) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidCredentials
	}

	return claims, nil
}

func (s *AuthServiceImpl) EnsureAdmin(ctx context.Context, admin config.AdminConfig) error {
	_, err := s.repository.FindByEmail(ctx, admin.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = s.repository.Create(ctx, &model.User{
		FirstName: "Admin",
		LastName:  "User",
		Email:     admin.Email,
		Password:  string(hashed),
		Role:      model.RoleAdmin,
		Verified:  true,
	})
	if err != nil && !errors.Is(err, apperrors.ErrEmailTaken) {
		return err
	}

	return nil
}
