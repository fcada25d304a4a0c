package memstore

import (
	"context"

	"studyspot/internal/domain/booking"
)

// CreateBooking persists the booking and then decrements the space's
// available seats as a side effect, clamped so the count never goes
// negative. The booking keeps its id even when the space no longer resolves;
// the two writes are not transactional and there is no rollback. Rejecting
// requests that exceed availability is the usecase layer's job, not ours.
func (s *Store) CreateBooking(_ context.Context, in booking.Booking) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.ID = s.nextBookingID
	s.nextBookingID++
	in.CreatedAt = s.clock.Now()

	s.bookings[in.ID] = in
	s.bookIDs = append(s.bookIDs, in.ID)

	if sp, ok := s.spaces[in.StudySpaceID]; ok {
		newAvailable := sp.AvailableSeats - in.NumberOfSeats
		if newAvailable < 0 {
			newAvailable = 0
		}
		_, _ = s.updateAvailabilityLocked(sp.ID, newAvailable)
	}

	return &in, nil
}

func (s *Store) AllBookings(_ context.Context) ([]booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]booking.Booking, 0, len(s.bookIDs))
	for _, id := range s.bookIDs {
		out = append(out, s.bookings[id])
	}
	return out, nil
}

func (s *Store) BookingsByUser(_ context.Context, userID int64) ([]booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []booking.Booking{}
	for _, id := range s.bookIDs {
		if b := s.bookings[id]; b.UserID != nil && *b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *Store) BookingsBySpace(_ context.Context, spaceID int64) ([]booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []booking.Booking{}
	for _, id := range s.bookIDs {
		if b := s.bookings[id]; b.StudySpaceID == spaceID {
			out = append(out, b)
		}
	}
	return out, nil
}
