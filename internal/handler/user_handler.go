package handler

import (
	"errors"
	"go-parking-management/internal/middleware"
	"go-parking-management/internal/model"
	"go-parking-management/internal/service"
	apperrors "go-parking-management/pkg/app_errors"
	"go-parking-management/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(r *gin.Engine, auth *middleware.AuthMiddleware) {
	router := r.Group("/api/users", auth.Authenticate())
	{
		router.GET("me", h.Me)
		router.PUT("change-password", h.ChangePassword)
	}
}

func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.service.GetByID(c, middleware.CallerID(c))
	if err != nil {
		h.handleError(c, err, "Me")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req model.ChangePasswordRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	if err := h.service.ChangePassword(c, middleware.CallerID(c), req); err != nil {
		h.handleError(c, err, "ChangePassword")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

func (h *UserHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		log.Warn("User not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		log.Warn("Wrong current password")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
