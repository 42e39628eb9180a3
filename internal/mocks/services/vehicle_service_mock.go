package services

import (
	"context"
	"go-parking-management/internal/model"

	"github.com/stretchr/testify/mock"
)

type VehicleServiceMock struct {
	mock.Mock
}

func NewVehicleServiceMock() *VehicleServiceMock {
	return &VehicleServiceMock{}
}

func (m *VehicleServiceMock) List(ctx context.Context, userID, page, limit int) (*model.VehiclePage, error) {
	args := m.Called(ctx, userID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VehiclePage), args.Error(1)
}

func (m *VehicleServiceMock) Create(ctx context.Context, userID int, req model.CreateVehicleRequest) (*model.Vehicle, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *VehicleServiceMock) Update(ctx context.Context, userID, id int, params model.UpdateVehicleParams) (*model.Vehicle, error) {
	args := m.Called(ctx, userID, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *VehicleServiceMock) Delete(ctx context.Context, userID, id int) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
