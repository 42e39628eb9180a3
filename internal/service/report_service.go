package service

import (
	"context"
	"fmt"
	"go-parking-management/internal/model"
	"go-parking-management/internal/repository"
	apperrors "go-parking-management/pkg/app_errors"
	"time"
)

const reportDateLayout = "2006-01-02"

// ParseReportRange validates a day-granularity range. The end date is
// inclusive: its whole day falls inside the range.
func ParseReportRange(startDate, endDate string) (model.ReportRange, error) {
	if startDate == "" || endDate == "" {
		return model.ReportRange{}, apperrors.ErrInvalidInput
	}

	start, err := time.Parse(reportDateLayout, startDate)
	if err != nil {
		return model.ReportRange{}, apperrors.ErrInvalidInput
	}
	end, err := time.Parse(reportDateLayout, endDate)
	if err != nil {
		return model.ReportRange{}, apperrors.ErrInvalidInput
	}
	if end.Before(start) {
		return model.ReportRange{}, apperrors.ErrInvalidInput
	}

	return model.ReportRange{
		Start: start,
		End:   end.AddDate(0, 0, 1),
	}, nil
}

type ReportService interface {
	// Outgoing reports cars that exited within the range.
	Outgoing(ctx context.Context, startDate, endDate string, page, limit int) (*model.OutgoingReport, error)
	// Entered reports cars that entered within the range, split into still
	// parked and already exited.
	Entered(ctx context.Context, startDate, endDate string, page, limit int) (*model.EnteredReport, error)
}

type ReportServiceImpl struct {
	repo repository.EntryRepository
}

func NewReportService(repo repository.EntryRepository) ReportService {
	return &ReportServiceImpl{repo: repo}
}

func (s *ReportServiceImpl) Outgoing(ctx context.Context, startDate, endDate string, page, limit int) (*model.OutgoingReport, error) {
	rng, err := ParseReportRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	total, totalAmount, err := s.repo.OutgoingStats(ctx, rng)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ListExitedBetween(ctx, rng, page, limit)
	if err != nil {
		return nil, err
	}

	return &model.OutgoingReport{
		OutgoingCars: entries,
		Summary: model.OutgoingSummary{
			TotalCars:   total,
			TotalAmount: fmt.Sprintf("%.2f", totalAmount),
			DateRange:   model.ReportDateRange{Start: startDate, End: endDate},
		},
		Pagination: buildPagination(total, page, limit),
	}, nil
}

func (s *ReportServiceImpl) Entered(ctx context.Context, startDate, endDate string, page, limit int) (*model.EnteredReport, error) {
	rng, err := ParseReportRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	total, active, exited, revenue, err := s.repo.EnteredStats(ctx, rng)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ListEnteredBetween(ctx, rng, page, limit)
	if err != nil {
		return nil, err
	}

	return &model.EnteredReport{
		EnteredCars: entries,
		Summary: model.EnteredSummary{
			TotalCars:    total,
			ActiveCars:   active,
			ExitedCars:   exited,
			TotalRevenue: fmt.Sprintf("%.2f", revenue),
			DateRange:    model.ReportDateRange{Start: startDate, End: endDate},
		},
		Pagination: buildPagination(total, page, limit),
	}, nil
}

func buildPagination(total, page, limit int) model.ReportPagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return model.ReportPagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
