package response

import (
	"time"

	"studyspot/internal/domain/booking"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            int64     `json:"id"`
	UserID        *int64    `json:"userId"`
	StudySpaceID  int64     `json:"studySpaceId"`
	Date          string    `json:"date"`
	TimeSlot      string    `json:"timeSlot"`
	NumberOfSeats int       `json:"numberOfSeats"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, b)
	return &resp
}

func FromBookings(items []booking.Booking) []*BookingResponse {
	out := make([]*BookingResponse, len(items))
	for i := range items {
		out[i] = FromBooking(&items[i])
	}
	return out
}
