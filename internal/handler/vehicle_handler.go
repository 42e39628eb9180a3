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

type VehicleHandler struct {
	service service.VehicleService
}

func NewVehicleHandler(service service.VehicleService) *VehicleHandler {
	return &VehicleHandler{service: service}
}

func (h *VehicleHandler) RegisterRoutes(r *gin.Engine, auth *middleware.AuthMiddleware) {
	router := r.Group("/api/vehicles", auth.Authenticate())
	{
		router.GET("", h.List)
		router.POST("", h.Create)
		router.PUT(":id", h.Update)
		router.DELETE(":id", h.Delete)
	}
}

type UpdateVehicleRequest struct {
	PlateNumber *string `json:"plate_number"`
	Brand       *string `json:"brand"`
	Model       *string `json:"model"`
	Color       *string `json:"color"`
}

func (h *VehicleHandler) List(c *gin.Context) {
	page, limit := PageParams(c)

	vehicles, err := h.service.List(c, middleware.CallerID(c), page, limit)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var req model.CreateVehicleRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	created, err := h.service.Create(c, middleware.CallerID(c), req)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	var req UpdateVehicleRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.PlateNumber == nil && req.Brand == nil && req.Model == nil && req.Color == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field is required"})
		return
	}

	params := model.UpdateVehicleParams{
		PlateNumber: req.PlateNumber,
		Brand:       req.Brand,
		Model:       req.Model,
		Color:       req.Color,
	}

	updated, err := h.service.Update(c, middleware.CallerID(c), id, params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c, middleware.CallerID(c), id); err != nil {
		h.handleError(c, err, "Delete")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VehicleHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrVehicleNotFound):
		log.Warn("Vehicle not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
	case errors.Is(err, apperrors.ErrPlateTaken):
		log.Warn("Plate taken")
		c.JSON(http.StatusConflict, gin.H{"error": "Plate number already registered"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
