package services

import (
	"context"
	"go-parking-management/internal/model"

	"github.com/stretchr/testify/mock"
)

type SlotServiceMock struct {
	mock.Mock
}

func NewSlotServiceMock() *SlotServiceMock {
	return &SlotServiceMock{}
}

func (m *SlotServiceMock) List(ctx context.Context, search string, page, limit int) (*model.SlotPage, error) {
	args := m.Called(ctx, search, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SlotPage), args.Error(1)
}

func (m *SlotServiceMock) GetByID(ctx context.Context, id int) (*model.ParkingSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ParkingSlot), args.Error(1)
}

func (m *SlotServiceMock) Create(ctx context.Context, req model.CreateSlotRequest) (*model.ParkingSlot, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ParkingSlot), args.Error(1)
}

func (m *SlotServiceMock) Update(ctx context.Context, id int, params model.UpdateSlotParams) (*model.ParkingSlot, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ParkingSlot), args.Error(1)
}

func (m *SlotServiceMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
