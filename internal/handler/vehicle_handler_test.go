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

func setupVehicleTestRouter(mockService *serviceMocks.VehicleServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(fakeIdentity(42, "user"))

	vehicleHandler := NewVehicleHandler(mockService)

	router.GET("/api/vehicles", vehicleHandler.List)
	router.POST("/api/vehicles", vehicleHandler.Create)
	router.PUT("/api/vehicles/:id", vehicleHandler.Update)
	router.DELETE("/api/vehicles/:id", vehicleHandler.Delete)

	return router
}

func TestCreateVehicle(t *testing.T) {
	validBody := model.CreateVehicleRequest{
		PlateNumber: "RAD 123 B",
		Brand:       "Toyota",
		Model:       "Corolla",
	}

	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewVehicleServiceMock()
		router := setupVehicleTestRouter(mockService)

		mockService.On("Create", mock.Anything, 42, validBody).Return(&model.Vehicle{
			ID:          1,
			UserID:      42,
			PlateNumber: "RAD 123 B",
			Brand:       "Toyota",
			Model:       "Corolla",
		}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/vehicles", validBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"plate_number":"RAD 123 B"`)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - plate taken", func(t *testing.T) {
		mockService := serviceMocks.NewVehicleServiceMock()
		router := setupVehicleTestRouter(mockService)

		mockService.On("Create", mock.Anything, 42, validBody).Return(nil, apperrors.ErrPlateTaken).Once()

		req := createJSONHTTPRequest("POST", "/api/vehicles", validBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - missing plate", func(t *testing.T) {
		mockService := serviceMocks.NewVehicleServiceMock()
		router := setupVehicleTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/vehicles", map[string]string{"brand": "Toyota", "model": "Corolla"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})
}

func TestListVehicles(t *testing.T) {
	t.Run("Success - scoped to the caller", func(t *testing.T) {
		mockService := serviceMocks.NewVehicleServiceMock()
		router := setupVehicleTestRouter(mockService)

		mockService.On("List", mock.Anything, 42, 1, 10).Return(&model.VehiclePage{
			Total: 1,
			Page:  1,
			Limit: 10,
			Vehicles: []*model.Vehicle{
				{ID: 1, UserID: 42, PlateNumber: "RAD 123 B", Brand: "Toyota", Model: "Corolla"},
			},
		}, nil).Once()

		req, _ := http.NewRequest("GET", "/api/vehicles", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":1`)
		mockService.AssertExpectations(t)
	})
}

func TestUpdateVehicle(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewVehicleServiceMock()
		router := setupVehicleTestRouter(mockService)

		color := "red"
		mockService.On("Update", mock.Anything, 42, 1, model.UpdateVehicleParams{Color: &color}).
			Return(&model.Vehicle{ID: 1, UserID: 42, PlateNumber: "RAD 123 B", Brand: "Toyota", Model: "Corolla", Color: &color}, nil).Once()

		req := createJSONHTTPRequest("PUT", "/api/vehicles/1", map[string]string{"color": "red"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"color":"red"`)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - empty body", func(t *testing.T) {
		mockService := serviceMocks.NewVehicleServiceMock()
		router := setupVehicleTestRouter(mockService)

		req := createJSONHTTPRequest("PUT", "/api/vehicles/1", map[string]string{})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Update")
	})

	t.Run("Failed - not the owner's vehicle", func(t *testing.T) {
		mockService := serviceMocks.NewVehicleServiceMock()
		router := setupVehicleTestRouter(mockService)

		brand := "Honda"
		mockService.On("Update", mock.Anything, 42, 7, model.UpdateVehicleParams{Brand: &brand}).
			Return(nil, apperrors.ErrVehicleNotFound).Once()

		req := createJSONHTTPRequest("PUT", "/api/vehicles/7", map[string]string{"brand": "Honda"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestDeleteVehicle(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewVehicleServiceMock()
		router := setupVehicleTestRouter(mockService)

		mockService.On("Delete", mock.Anything, 42, 1).Return(nil).Once()

		req, _ := http.NewRequest("DELETE", "/api/vehicles/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - not found", func(t *testing.T) {
		mockService := serviceMocks.NewVehicleServiceMock()
		router := setupVehicleTestRouter(mockService)

		mockService.On("Delete", mock.Anything, 42, 99).Return(apperrors.ErrVehicleNotFound).Once()

		req, _ := http.NewRequest("DELETE", "/api/vehicles/99", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}
