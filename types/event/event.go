package event

import (
	"fmt"
)

// EventCreateRequest is the event-creation form payload. The booking supplies
// date, time and place; capacity caps active participants when positive.
type EventCreateRequest struct {
	ClubID      uint   `json:"club_id"`
	BookingID   uint   `json:"booking_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Capacity    *int   `json:"capacity,omitempty"`
	IsOpen      *bool  `json:"is_open,omitempty"`
}

func (e EventCreateRequest) Validate() error {
	if e.ClubID == 0 {
		return fmt.Errorf("club_id is required")
	}
	if e.BookingID == 0 {
		return fmt.Errorf("booking_id is required")
	}
	if e.Title == "" {
		return fmt.Errorf("title is required")
	}
	if e.Capacity != nil && *e.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative")
	}
	return nil
}

// AttendanceRequest records one participant's attendance and points.
type AttendanceRequest struct {
	UserID   uint `json:"user_id"`
	Attended bool `json:"attended"`
	Points   int  `json:"points"`
}

func (a AttendanceRequest) Validate() error {
	if a.UserID == 0 {
		return fmt.Errorf("user_id is required")
	}
	return nil
}
