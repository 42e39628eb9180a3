package repositories

import (
	"context"
	"go-parking-management/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type SlotRepositoryMock struct {
	mock.Mock
}

func NewSlotRepositoryMock() *SlotRepositoryMock {
	return &SlotRepositoryMock{}
}

func (m *SlotRepositoryMock) Create(ctx context.Context, slot *model.ParkingSlot) (*model.ParkingSlot, error) {
	args := m.Called(ctx, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ParkingSlot), args.Error(1)
}

func (m *SlotRepositoryMock) List(ctx context.Context, search string, page, limit int) ([]*model.ParkingSlot, int, error) {
	args := m.Called(ctx, search, page, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*model.ParkingSlot), args.Int(1), args.Error(2)
}

func (m *SlotRepositoryMock) FindByID(ctx context.Context, id int) (*model.ParkingSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ParkingSlot), args.Error(1)
}

func (m *SlotRepositoryMock) FindByCode(ctx context.Context, code string) (*model.ParkingSlot, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ParkingSlot), args.Error(1)
}

func (m *SlotRepositoryMock) Update(ctx context.Context, id int, params model.UpdateSlotParams) (*model.ParkingSlot, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ParkingSlot), args.Error(1)
}

func (m *SlotRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *SlotRepositoryMock) FindByCodeTx(ctx context.Context, tx pgx.Tx, code string) (*model.ParkingSlot, error) {
	args := m.Called(ctx, tx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ParkingSlot), args.Error(1)
}

func (m *SlotRepositoryMock) DecrementAvailable(ctx context.Context, tx pgx.Tx, code string) error {
	args := m.Called(ctx, tx, code)
	return args.Error(0)
}

func (m *SlotRepositoryMock) IncrementAvailable(ctx context.Context, tx pgx.Tx, code string) error {
	args := m.Called(ctx, tx, code)
	return args.Error(0)
}
