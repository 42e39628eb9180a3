package model

import "time"

// ReportRange is a day-granularity date range; End covers the whole end day.
type ReportRange struct {
	Start time.Time
	End   time.Time
}

type ReportDateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ReportPagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// OutgoingSummary aggregates cars that exited within the range.
type OutgoingSummary struct {
	TotalCars   int             `json:"totalCars"`
	TotalAmount string          `json:"totalAmount"`
	DateRange   ReportDateRange `json:"dateRange"`
}

// EnteredSummary aggregates cars that entered within the range, split by
// whether they have exited since.
type EnteredSummary struct {
	TotalCars    int             `json:"totalCars"`
	ActiveCars   int             `json:"activeCars"`
	ExitedCars   int             `json:"exitedCars"`
	TotalRevenue string          `json:"totalRevenue"`
	DateRange    ReportDateRange `json:"dateRange"`
}

type OutgoingReport struct {
	OutgoingCars []*CarEntry      `json:"outgoingCars"`
	Summary      OutgoingSummary  `json:"summary"`
	Pagination   ReportPagination `json:"pagination"`
}

type EnteredReport struct {
	EnteredCars []*CarEntry      `json:"enteredCars"`
	Summary     EnteredSummary   `json:"summary"`
	Pagination  ReportPagination `json:"pagination"`
}
