//go:build unit

package memstore_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Seed(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	require.NoError(t, store.Seed(ctx))

	amenities, err := store.AllAmenities(ctx)
	require.NoError(t, err)
	assert.Len(t, amenities, 8)

	spaces, err := store.AllStudySpaces(ctx)
	require.NoError(t, err)
	require.Len(t, spaces, 6)

	// Every seeded space carries three associations and five sample reviews.
	for _, sp := range spaces {
		assert.Len(t, sp.Amenities, 3, sp.Name)
		assert.Equal(t, 5, sp.TotalReviews, sp.Name)
		assert.InDelta(t, 4.2, sp.AverageRating, 0.0001, sp.Name) // (4+5+3+4+5)/5
	}

	reviews, err := store.AllReviews(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews, 30)
}

func TestStore_Seed_CentralLibraryCatalogEntry(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	require.NoError(t, store.Seed(ctx))

	sp, err := store.GetDecoratedSpaceByID(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, "Central Library", sp.Name)
	assert.Equal(t, 120, sp.TotalSeats)
	assert.Equal(t, 76, sp.AvailableSeats)
	assert.Equal(t, "8:00 AM - 10:00 PM", sp.OpeningHours)

	names := make([]string, len(sp.Amenities))
	for i, a := range sp.Amenities {
		names[i] = a.Name
	}
	if diff := cmp.Diff([]string{"Free Wi-Fi", "Power Outlets", "Quiet Zone"}, names); diff != "" {
		t.Errorf("unexpected amenities (-want +got):\n%s", diff)
	}
}

func TestStore_Seed_SpaceWithZeroAvailability(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	require.NoError(t, store.Seed(ctx))

	results, err := store.SearchStudySpaces(ctx, "Startup Hub", nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].AvailableSeats)
	assert.Equal(t, 45, results[0].TotalSeats)
}
