//go:build unit

package memstore_test

import (
	"context"
	"testing"

	"studyspot/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Booking-triggered seat decrement
// =============================================================================

func TestStore_CreateBooking_DecrementsAvailability(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name              string
		available         int
		requested         int
		expectedAvailable int
	}{
		{
			name:              "normal decrement",
			available:         76,
			requested:         3,
			expectedAvailable: 73,
		},
		{
			name:              "booking down to zero",
			available:         2,
			requested:         2,
			expectedAvailable: 0,
		},
		{
			name:              "oversized request clamps at zero instead of going negative",
			available:         5,
			requested:         9,
			expectedAvailable: 0,
		},
		{
			name:              "booking against an already empty space stays at zero",
			available:         0,
			requested:         1,
			expectedAvailable: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newTestStore()
			sp, err := store.CreateStudySpace(ctx, builder.NewStudySpaceBuilder().WithSeats(120, tc.available).Build())
			require.NoError(t, err)

			created, err := store.CreateBooking(ctx, builder.NewBookingBuilder(sp.ID).WithSeats(tc.requested).Build())
			require.NoError(t, err)
			assert.Equal(t, int64(1), created.ID)

			after, err := store.GetStudySpaceByID(ctx, sp.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedAvailable, after.AvailableSeats)
			assert.GreaterOrEqual(t, after.AvailableSeats, 0)
		})
	}
}

func TestStore_CreateBooking_UnknownSpaceStillPersistsBooking(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	// The store does not reject dangling references; rejecting them is the
	// usecase layer's job. The booking keeps its assigned id.
	created, err := store.CreateBooking(ctx, builder.NewBookingBuilder(99).Build())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	all, err := store.AllBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

// =============================================================================
// Foreign-key lookups
// =============================================================================

func TestStore_BookingLookups(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	spaceA, err := store.CreateStudySpace(ctx, builder.NewStudySpaceBuilder().Build())
	require.NoError(t, err)
	spaceB, err := store.CreateStudySpace(ctx, builder.NewStudySpaceBuilder().WithName("The Bookworm Café").Build())
	require.NoError(t, err)

	_, err = store.CreateBooking(ctx, builder.NewBookingBuilder(spaceA.ID).WithUser(7).Build())
	require.NoError(t, err)
	_, err = store.CreateBooking(ctx, builder.NewBookingBuilder(spaceB.ID).WithUser(7).Build())
	require.NoError(t, err)
	_, err = store.CreateBooking(ctx, builder.NewBookingBuilder(spaceB.ID).Build()) // anonymous
	require.NoError(t, err)

	byUser, err := store.BookingsByUser(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	bySpace, err := store.BookingsBySpace(ctx, spaceB.ID)
	require.NoError(t, err)
	assert.Len(t, bySpace, 2)

	all, err := store.AllBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := store.BookingsByUser(ctx, 12345)
	require.NoError(t, err)
	assert.Empty(t, none)
}
