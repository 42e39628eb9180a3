package handler

import (
	"errors"
	"go-parking-management/internal/model"
	"go-parking-management/internal/service"
	apperrors "go-parking-management/pkg/app_errors"
	"go-parking-management/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/auth")
	{
		router.POST("register", h.Register)
		router.POST("login", h.Login)
		router.POST("verify-otp", h.VerifyOTP)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	user, err := h.service.Register(c, req)
	if err != nil {
		h.handleError(c, err, "Register")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created, check your email for the verification code",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	if err := h.service.Login(c, req); err != nil {
		h.handleError(c, err, "Login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "OTP sent to your email",
	})
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req model.VerifyOTPRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	resp, err := h.service.VerifyOTP(c, req)
	if err != nil {
		h.handleError(c, err, "VerifyOTP")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrEmailTaken):
		log.Warn("Email taken")
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		log.Warn("Invalid credentials")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, apperrors.ErrInvalidOTP):
		log.Warn("Invalid OTP")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired OTP"})
	case errors.Is(err, apperrors.ErrTooManyOTPAttempts):
		log.Warn("Too many OTP attempts")
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many attempts, request a new code"})
	case errors.Is(err, apperrors.ErrUserNotFound):
		log.Warn("User not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
