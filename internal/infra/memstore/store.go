// Package memstore holds the whole catalog in process memory: keyed
// collections per entity type, monotonic id counters starting at 1, and the
// seat-inventory bookkeeping that keeps availableSeats consistent as
// bookings come in. State is lost on restart; that is a deliberate
// simplification, not a fault.
package memstore

import (
	"sync"

	"studyspot/internal/domain/amenity"
	"studyspot/internal/domain/booking"
	"studyspot/internal/domain/review"
	"studyspot/internal/domain/studyspace"
	"studyspot/internal/domain/user"
	"studyspot/internal/pkg/clock"
)

// Store owns all base collections. Maps give O(1) id lookup; the order
// slices preserve insertion order because Go map iteration does not.
// Associations are a plain slice: the pair has no id and duplicates are
// tolerated (consumers resolve in association insertion order).
type Store struct {
	mu    sync.RWMutex
	clock clock.Clock

	users     map[int64]user.User
	userIDs   []int64
	spaces    map[int64]studyspace.StudySpace
	spaceIDs  []int64
	amenities map[int64]amenity.Amenity
	amenIDs   []int64
	assocs    []amenity.Association
	bookings  map[int64]booking.Booking
	bookIDs   []int64
	reviews   map[int64]review.Review
	reviewIDs []int64

	nextUserID    int64
	nextSpaceID   int64
	nextAmenityID int64
	nextBookingID int64
	nextReviewID  int64
}

func New(clk clock.Clock) *Store {
	return &Store{
		clock:         clk,
		users:         make(map[int64]user.User),
		spaces:        make(map[int64]studyspace.StudySpace),
		amenities:     make(map[int64]amenity.Amenity),
		bookings:      make(map[int64]booking.Booking),
		reviews:       make(map[int64]review.Review),
		nextUserID:    1,
		nextSpaceID:   1,
		nextAmenityID: 1,
		nextBookingID: 1,
		nextReviewID:  1,
	}
}
