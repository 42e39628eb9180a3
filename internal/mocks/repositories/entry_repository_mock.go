package repositories

import (
	"context"
	"go-parking-management/internal/model"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type EntryRepositoryMock struct {
	mock.Mock
}

func NewEntryRepositoryMock() *EntryRepositoryMock {
	return &EntryRepositoryMock{}
}

func (m *EntryRepositoryMock) FindByID(ctx context.Context, id int) (*model.CarEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CarEntry), args.Error(1)
}

func (m *EntryRepositoryMock) List(ctx context.Context, search string, page, limit int) ([]*model.CarEntry, int, error) {
	args := m.Called(ctx, search, page, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*model.CarEntry), args.Int(1), args.Error(2)
}

func (m *EntryRepositoryMock) ListExitedBetween(ctx context.Context, r model.ReportRange, page, limit int) ([]*model.CarEntry, error) {
	args := m.Called(ctx, r, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CarEntry), args.Error(1)
}

func (m *EntryRepositoryMock) OutgoingStats(ctx context.Context, r model.ReportRange) (int, float64, error) {
	args := m.Called(ctx, r)
	return args.Int(0), args.Get(1).(float64), args.Error(2)
}

func (m *EntryRepositoryMock) ListEnteredBetween(ctx context.Context, r model.ReportRange, page, limit int) ([]*model.CarEntry, error) {
	args := m.Called(ctx, r, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CarEntry), args.Error(1)
}

func (m *EntryRepositoryMock) EnteredStats(ctx context.Context, r model.ReportRange) (int, int, int, float64, error) {
	args := m.Called(ctx, r)
	return args.Int(0), args.Int(1), args.Int(2), args.Get(3).(float64), args.Error(4)
}

func (m *EntryRepositoryMock) Create(ctx context.Context, tx pgx.Tx, entry *model.CarEntry) (*model.CarEntry, error) {
	args := m.Called(ctx, tx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CarEntry), args.Error(1)
}

func (m *EntryRepositoryMock) CloseEntry(ctx context.Context, tx pgx.Tx, id int, exitTime time.Time, amount float64) (*model.CarEntry, error) {
	args := m.Called(ctx, tx, id, exitTime, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CarEntry), args.Error(1)
}
