package service

import (
	"fmt"
	"math"
	"time"
)

// BillableMinutes counts every started minute between entry and exit, so a
// stay of 2m30s bills as 3 minutes. A non-positive elapsed time bills as 0.
func BillableMinutes(entryTime, exitTime time.Time) int {
	elapsed := exitTime.Sub(entryTime)
	if elapsed <= 0 {
		return 0
	}
	return int(math.Ceil(elapsed.Minutes()))
}

// ComputeAmount derives the charge from the slot's configured hourly rate,
// applied per started minute: feePerHour/60 per minute, rounded to 2
// decimals. The slot row is the single source of truth for pricing.
func ComputeAmount(entryTime, exitTime time.Time, feePerHour float64) float64 {
	minutes := BillableMinutes(entryTime, exitTime)
	amount := float64(minutes) * feePerHour / 60
	return math.Round(amount*100) / 100
}

// FormatDuration renders the elapsed stay as "XhYm" for receipts and bills.
func FormatDuration(entryTime, exitTime time.Time) string {
	elapsed := exitTime.Sub(entryTime)
	if elapsed < 0 {
		elapsed = 0
	}
	hours := int(elapsed.Hours())
	minutes := int(elapsed.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
