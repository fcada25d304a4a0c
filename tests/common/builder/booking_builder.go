package builder

import (
	"studyspot/internal/domain/booking"
)

type BookingBuilder struct {
	b booking.Booking
}

func NewBookingBuilder(studySpaceID int64) *BookingBuilder {
	return &BookingBuilder{
		b: booking.Booking{
			StudySpaceID:  studySpaceID,
			Date:          "2025-06-01",
			TimeSlot:      "Morning (8 AM - 12 PM)",
			NumberOfSeats: 2,
		},
	}
}

func (bb *BookingBuilder) WithUser(userID int64) *BookingBuilder {
	bb.b.UserID = &userID
	return bb
}

func (bb *BookingBuilder) WithSeats(n int) *BookingBuilder {
	bb.b.NumberOfSeats = n
	return bb
}

func (bb *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	bb.b.Notes = notes
	return bb
}

func (bb *BookingBuilder) Build() booking.Booking {
	return bb.b
}
