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

type SlotHandler struct {
	service service.SlotService
}

func NewSlotHandler(service service.SlotService) *SlotHandler {
	return &SlotHandler{service: service}
}

// RegisterRoutes exposes listing to every authenticated user; mutations are
// admin-only.
func (h *SlotHandler) RegisterRoutes(r *gin.Engine, auth *middleware.AuthMiddleware) {
	router := r.Group("/api/slots", auth.Authenticate())
	{
		router.GET("", h.List)
		router.GET(":id", h.GetByID)
	}

	admin := r.Group("/api/slots", auth.Authenticate(), auth.RequireRole(string(model.RoleAdmin)))
	{
		admin.POST("", h.Create)
		admin.PUT(":id", h.Update)
		admin.DELETE(":id", h.Delete)
	}
}

// UpdateSlotRequest is the partial-update body; at least one field must be
// set.
type UpdateSlotRequest struct {
	Name        *string  `json:"name"`
	Location    *string  `json:"location"`
	FeePerHour  *float64 `json:"fee_per_hour"`
	TotalSpaces *int     `json:"total_spaces"`
}

func (h *SlotHandler) List(c *gin.Context) {
	page, limit := PageParams(c)

	slots, err := h.service.List(c, c.Query("search"), page, limit)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}

	c.JSON(http.StatusOK, slots)
}

func (h *SlotHandler) GetByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	slot, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}

	c.JSON(http.StatusOK, slot)
}

func (h *SlotHandler) Create(c *gin.Context) {
	var req model.CreateSlotRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	created, err := h.service.Create(c, req)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *SlotHandler) Update(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	var req UpdateSlotRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.Name == nil && req.Location == nil && req.FeePerHour == nil && req.TotalSpaces == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field is required"})
		return
	}

	params := model.UpdateSlotParams{
		Name:        req.Name,
		Location:    req.Location,
		FeePerHour:  req.FeePerHour,
		TotalSpaces: req.TotalSpaces,
	}

	updated, err := h.service.Update(c, id, params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *SlotHandler) Delete(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		h.handleError(c, err, "Delete")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SlotHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrSlotNotFound):
		log.Warn("Slot not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Parking slot not found"})
	case errors.Is(err, apperrors.ErrSlotCodeTaken):
		log.Warn("Slot code taken")
		c.JSON(http.StatusConflict, gin.H{"error": "Parking slot code already exists"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
