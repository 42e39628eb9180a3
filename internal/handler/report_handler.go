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

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(service service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) RegisterRoutes(r *gin.Engine, auth *middleware.AuthMiddleware) {
	router := r.Group("/api/reports", auth.Authenticate(), auth.RequireRole(string(model.RoleAdmin)))
	{
		router.GET("outgoing", h.Outgoing)
		router.GET("entered", h.Entered)
	}
}

func (h *ReportHandler) Outgoing(c *gin.Context) {
	page, limit := PageParams(c)

	report, err := h.service.Outgoing(c, c.Query("startDate"), c.Query("endDate"), page, limit)
	if err != nil {
		h.handleError(c, err, "Outgoing")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    report,
	})
}

func (h *ReportHandler) Entered(c *gin.Context) {
	page, limit := PageParams(c)

	report, err := h.service.Entered(c, c.Query("startDate"), c.Query("endDate"), page, limit)
	if err != nil {
		h.handleError(c, err, "Entered")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    report,
	})
}

func (h *ReportHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid date range")
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "startDate and endDate are required as YYYY-MM-DD, startDate <= endDate"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
	}
}
