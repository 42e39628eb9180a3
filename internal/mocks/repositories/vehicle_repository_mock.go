package repositories

import (
	"context"
	"go-parking-management/internal/model"

	"github.com/stretchr/testify/mock"
)

type VehicleRepositoryMock struct {
	mock.Mock
}

func NewVehicleRepositoryMock() *VehicleRepositoryMock {
	return &VehicleRepositoryMock{}
}

func (m *VehicleRepositoryMock) Create(ctx context.Context, vehicle *model.Vehicle) (*model.Vehicle, error) {
	args := m.Called(ctx, vehicle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *VehicleRepositoryMock) ListByUser(ctx context.Context, userID, page, limit int) ([]*model.Vehicle, int, error) {
	args := m.Called(ctx, userID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*model.Vehicle), args.Int(1), args.Error(2)
}

func (m *VehicleRepositoryMock) FindByID(ctx context.Context, id int) (*model.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *VehicleRepositoryMock) FindByPlate(ctx context.Context, plateNumber string) (*model.Vehicle, error) {
	args := m.Called(ctx, plateNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *VehicleRepositoryMock) Update(ctx context.Context, id int, params model.UpdateVehicleParams) (*model.Vehicle, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *VehicleRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
