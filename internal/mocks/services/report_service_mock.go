package services

import (
	"context"
	"go-parking-management/internal/model"

	"github.com/stretchr/testify/mock"
)

type ReportServiceMock struct {
	mock.Mock
}

func NewReportServiceMock() *ReportServiceMock {
	return &ReportServiceMock{}
}

func (m *ReportServiceMock) Outgoing(ctx context.Context, startDate, endDate string, page, limit int) (*model.OutgoingReport, error) {
	args := m.Called(ctx, startDate, endDate, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OutgoingReport), args.Error(1)
}

func (m *ReportServiceMock) Entered(ctx context.Context, startDate, endDate string, page, limit int) (*model.EnteredReport, error) {
	args := m.Called(ctx, startDate, endDate, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EnteredReport), args.Error(1)
}
