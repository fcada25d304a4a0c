package commands

import (
	"context"

	"studyspot/internal/domain/booking"
	"studyspot/internal/infra"
	"studyspot/internal/pkg/errs"
)

type CreateBookingRequest struct {
	UserID        *int64
	StudySpaceID  int64
	Date          string
	TimeSlot      string
	NumberOfSeats int
	Notes         string
}

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest) (*booking.Booking, error)
}

type bookingCommandsImpl struct {
	store BookingStore
}

func NewBookingCommands(store BookingStore) BookingCommands {
	return &bookingCommandsImpl{store: store}
}

// Create enforces the seat-availability boundary check before handing off to
// the store: the store itself only clamps, it never rejects an oversized
// request.
func (uc *bookingCommandsImpl) Create(ctx context.Context, req CreateBookingRequest) (*booking.Booking, error) {
	sp, err := uc.store.GetStudySpaceByID(ctx, req.StudySpaceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrStudySpaceNotFound)
		}
		return nil, err
	}

	if sp.AvailableSeats < req.NumberOfSeats {
		return nil, errs.ErrNotEnoughSeats
	}

	return uc.store.CreateBooking(ctx, booking.Booking{
		UserID:        req.UserID,
		StudySpaceID:  req.StudySpaceID,
		Date:          req.Date,
		TimeSlot:      req.TimeSlot,
		NumberOfSeats: req.NumberOfSeats,
		Notes:         req.Notes,
	})
}
