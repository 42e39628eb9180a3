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

type EntryHandler struct {
	service service.EntryService
}

func NewEntryHandler(service service.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

func (h *EntryHandler) RegisterRoutes(r *gin.Engine, auth *middleware.AuthMiddleware) {
	router := r.Group("/api/car-entries", auth.Authenticate())
	{
		router.GET("", h.ListEntries)
		router.POST("", h.RegisterEntry)
		router.PUT(":id/exit", h.RegisterExit)
	}
}

func (h *EntryHandler) RegisterEntry(c *gin.Context) {
	var req model.RegisterEntryRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	entry, err := h.service.RegisterEntry(c, req)
	if err != nil {
		h.handleError(c, err, "RegisterEntry")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Car entry registered",
		"entry":   entry,
	})
}

func (h *EntryHandler) RegisterExit(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	resp, err := h.service.RegisterExit(c, id, middleware.CallerID(c))
	if err != nil {
		h.handleError(c, err, "RegisterExit")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *EntryHandler) ListEntries(c *gin.Context) {
	var query model.ListEntriesQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	page, err := h.service.ListEntries(c, query)
	if err != nil {
		h.handleError(c, err, "ListEntries")
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *EntryHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrSlotNotFound):
		log.Warn("Slot not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Parking slot not found"})
	case errors.Is(err, apperrors.ErrNoAvailableSpaces):
		log.Warn("No available spaces")
		c.JSON(http.StatusConflict, gin.H{"error": "No available spaces"})
	case errors.Is(err, apperrors.ErrEntryNotFound):
		log.Warn("Entry not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Car entry not found"})
	case errors.Is(err, apperrors.ErrAlreadyExited):
		log.Warn("Already exited")
		c.JSON(http.StatusConflict, gin.H{"error": "Car already exited"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
