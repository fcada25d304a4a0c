package booking

import "time"

// Booking reserves a number of seats at a study space for a date and time
// slot. UserID is nil for anonymous bookings. Bookings are never mutated or
// deleted once created.
type Booking struct {
	ID            int64
	UserID        *int64
	StudySpaceID  int64
	Date          string
	TimeSlot      string
	NumberOfSeats int
	Notes         string
	CreatedAt     time.Time
}
