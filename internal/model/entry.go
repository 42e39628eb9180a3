package model

import "time"

// CarEntry is a ticketed occupancy record, open from check-in until
// check-out. An entry is open while ExitTime is nil; once closed it is never
// reopened and Amount is finalized exactly once, at exit.
type CarEntry struct {
	ID           int        `json:"id" db:"id"`
	PlateNumber  string     `json:"plate_number" db:"plate_number"`
	ParkingCode  string     `json:"parking_code" db:"parking_code"`
	EntryTime    time.Time  `json:"entry_time" db:"entry_time"`
	ExitTime     *time.Time `json:"exit_time" db:"exit_time"`
	Amount       float64    `json:"amount" db:"amount"`
	TicketNumber string     `json:"ticket_number" db:"ticket_number"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// IsOpen reports whether the car is still parked.
func (e *CarEntry) IsOpen() bool {
	return e.ExitTime == nil
}

type RegisterEntryRequest struct {
	PlateNumber string `json:"plate_number" binding:"required"`
	ParkingCode string `json:"parking_code" binding:"required"`
}

// Bill summarizes the charge computed at exit.
type Bill struct {
	Duration string  `json:"duration"`
	Amount   float64 `json:"amount"`
}

// ExitResponse is the payload of a successful exit registration. EmailSent
// reports whether the receipt reached the mail provider; delivery failure is
// never an error.
type ExitResponse struct {
	Message   string    `json:"message"`
	Bill      *Bill     `json:"bill"`
	Entry     *CarEntry `json:"entry"`
	EmailSent bool      `json:"emailSent"`
}

// EntryPage is the paginated entry listing payload.
type EntryPage struct {
	Total   int         `json:"total"`
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
	Entries []*CarEntry `json:"entries"`
}

// ListEntriesQuery carries search and pagination parameters. Search matches
// case-insensitive substrings of plate_number or parking_code.
type ListEntriesQuery struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1" binding:"min=1"`
	Limit  int    `form:"limit,default=10" binding:"min=1,max=100"`
}
