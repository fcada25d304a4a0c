package queries

import (
	"context"

	"studyspot/internal/domain/booking"
)

type BookingReadStore interface {
	AllBookings(ctx context.Context) ([]booking.Booking, error)
	BookingsByUser(ctx context.Context, userID int64) ([]booking.Booking, error)
	BookingsBySpace(ctx context.Context, spaceID int64) ([]booking.Booking, error)
}

type BookingQueries interface {
	List(ctx context.Context, userID, studySpaceID *int64) ([]booking.Booking, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

// List narrows by user first, then by space; with neither it returns
// everything.
func (q *bookingQueriesImpl) List(ctx context.Context, userID, studySpaceID *int64) ([]booking.Booking, error) {
	switch {
	case userID != nil:
		return q.store.BookingsByUser(ctx, *userID)
	case studySpaceID != nil:
		return q.store.BookingsBySpace(ctx, *studySpaceID)
	default:
		return q.store.AllBookings(ctx)
	}
}
