package services

import (
	"context"
	"go-parking-management/internal/model"

	"github.com/stretchr/testify/mock"
)

type EntryServiceMock struct {
	mock.Mock
}

func NewEntryServiceMock() *EntryServiceMock {
	return &EntryServiceMock{}
}

func (m *EntryServiceMock) RegisterEntry(ctx context.Context, req model.RegisterEntryRequest) (*model.CarEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CarEntry), args.Error(1)
}

func (m *EntryServiceMock) RegisterExit(ctx context.Context, id int, operatorID int) (*model.ExitResponse, error) {
	args := m.Called(ctx, id, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExitResponse), args.Error(1)
}

func (m *EntryServiceMock) ListEntries(ctx context.Context, q model.ListEntriesQuery) (*model.EntryPage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EntryPage), args.Error(1)
}
