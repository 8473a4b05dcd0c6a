package booking

import (
	"fmt"
)

// BookingCreateRequest is the booking form payload. Time values are "HH:MM"
// on the 30-minute grid; the service validates grid, window and ordering.
type BookingCreateRequest struct {
	BookName  string `json:"book_name"`
	PlaceID   uint   `json:"place_id"`
	Date      string `json:"date"`
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`
}

// Validate checks required fields only; interval semantics are the booking
// service's job.
func (b BookingCreateRequest) Validate() error {
	if b.BookName == "" {
		return fmt.Errorf("book_name is required")
	}
	if b.PlaceID == 0 {
		return fmt.Errorf("place_id is required")
	}
	if b.Date == "" {
		return fmt.Errorf("date is required")
	}
	if b.TimeStart == "" {
		return fmt.Errorf("time_start is required")
	}
	if b.TimeEnd == "" {
		return fmt.Errorf("time_end is required")
	}
	return nil
}

// ConflictCheckQuery is the pre-flight conflict check, passed as query
// parameters on GET /api/booking/check.
type ConflictCheckQuery struct {
	PlaceID   uint   `query:"place_id"`
	Date      string `query:"date"`
	TimeStart string `query:"time_start"`
	TimeEnd   string `query:"time_end"`
}

func (q ConflictCheckQuery) Validate() error {
	if q.PlaceID == 0 || q.Date == "" || q.TimeStart == "" || q.TimeEnd == "" {
		return fmt.Errorf("place_id, date, time_start and time_end are required")
	}
	return nil
}
