package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	serviceMocks "go-parking-management/internal/mocks/services"
	"go-parking-management/internal/model"
	apperrors "go-parking-management/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupSlotTestRouter(mockService *serviceMocks.SlotServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(fakeIdentity(1, "admin"))

	slotHandler := NewSlotHandler(mockService)

	router.GET("/api/slots", slotHandler.List)
	router.GET("/api/slots/:id", slotHandler.GetByID)
	router.POST("/api/slots", slotHandler.Create)
	router.PUT("/api/slots/:id", slotHandler.Update)
	router.DELETE("/api/slots/:id", slotHandler.Delete)

	return router
}

func TestCreateSlot(t *testing.T) {
	validBody := model.CreateSlotRequest{
		Code:        "PK-01",
		Name:        "North Lot",
		Location:    "Block A",
		FeePerHour:  12000,
		TotalSpaces: 20,
	}

	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewSlotServiceMock()
		router := setupSlotTestRouter(mockService)

		mockService.On("Create", mock.Anything, mock.Anything).Return(&model.ParkingSlot{
			ID:              1,
			Code:            "PK-01",
			TotalSpaces:     20,
			AvailableSpaces: 20,
		}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/slots", validBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrSlotCodeTaken", func(t *testing.T) {
		mockService := serviceMocks.NewSlotServiceMock()
		router := setupSlotTestRouter(mockService)

		mockService.On("Create", mock.Anything, mock.Anything).Return(nil, apperrors.ErrSlotCodeTaken).Once()

		req := createJSONHTTPRequest("POST", "/api/slots", validBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestGetSlot(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewSlotServiceMock()
		router := setupSlotTestRouter(mockService)

		mockService.On("GetByID", mock.Anything, 5).Return(&model.ParkingSlot{ID: 5, Code: "PK-05"}, nil).Once()

		req := httptest.NewRequest("GET", "/api/slots/5", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrSlotNotFound", func(t *testing.T) {
		mockService := serviceMocks.NewSlotServiceMock()
		router := setupSlotTestRouter(mockService)

		mockService.On("GetByID", mock.Anything, 99999).Return(nil, apperrors.ErrSlotNotFound).Once()

		req := httptest.NewRequest("GET", "/api/slots/99999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestUpdateSlot(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewSlotServiceMock()
		router := setupSlotTestRouter(mockService)

		mockService.On("Update", mock.Anything, 5, mock.Anything).Return(&model.ParkingSlot{ID: 5, TotalSpaces: 30}, nil).Once()

		total := 30
		req := createJSONHTTPRequest("PUT", "/api/slots/5", UpdateSlotRequest{TotalSpaces: &total})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - empty body", func(t *testing.T) {
		mockService := serviceMocks.NewSlotServiceMock()
		router := setupSlotTestRouter(mockService)

		req := createJSONHTTPRequest("PUT", "/api/slots/5", UpdateSlotRequest{})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Update")
	})
}

func TestDeleteSlot(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewSlotServiceMock()
		router := setupSlotTestRouter(mockService)

		mockService.On("Delete", mock.Anything, 5).Return(nil).Once()

		req := httptest.NewRequest("DELETE", "/api/slots/5", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrSlotNotFound", func(t *testing.T) {
		mockService := serviceMocks.NewSlotServiceMock()
		router := setupSlotTestRouter(mockService)

		mockService.On("Delete", mock.Anything, 99999).Return(apperrors.ErrSlotNotFound).Once()

		req := httptest.NewRequest("DELETE", "/api/slots/99999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}
