//go:build unit

package memstore_test

import (
	"context"
	"testing"

	"studyspot/internal/domain/amenity"
	"studyspot/internal/infra/memstore"
	"studyspot/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSearchFixtures(t *testing.T, store *memstore.Store) {
	t.Helper()
	ctx := context.Background()

	wifi, err := store.CreateAmenity(ctx, amenity.Amenity{Name: "Free Wi-Fi", Icon: "wifi"})
	require.NoError(t, err)
	cafe, err := store.CreateAmenity(ctx, amenity.Amenity{Name: "Café", Icon: "coffee"})
	require.NoError(t, err)

	library, err := store.CreateStudySpace(ctx, builder.NewStudySpaceBuilder().
		WithName("Central Library").WithAddress("123 University Ave, Indore").Build())
	require.NoError(t, err)
	bookworm, err := store.CreateStudySpace(ctx, builder.NewStudySpaceBuilder().
		WithName("The Bookworm Café").WithAddress("45 Park Street, Indore").Build())
	require.NoError(t, err)
	annex, err := store.CreateStudySpace(ctx, builder.NewStudySpaceBuilder().
		WithName("Reading Annex").WithAddress("9 Library Road, Indore").Build())
	require.NoError(t, err)

	for _, spaceID := range []int64{library.ID, bookworm.ID, annex.ID} {
		_, err = store.AddAmenityToSpace(ctx, amenity.Association{StudySpaceID: spaceID, AmenityID: wifi.ID})
		require.NoError(t, err)
	}
	_, err = store.AddAmenityToSpace(ctx, amenity.Association{StudySpaceID: bookworm.ID, AmenityID: cafe.ID})
	require.NoError(t, err)
}

func searchNames(t *testing.T, store *memstore.Store, query string, filters []string) []string {
	t.Helper()

	results, err := store.SearchStudySpaces(context.Background(), query, filters)
	require.NoError(t, err)

	names := make([]string, len(results))
	for i, sp := range results {
		names[i] = sp.Name
	}
	return names
}

func TestStore_SearchStudySpaces(t *testing.T) {
	testCases := []struct {
		name          string
		query         string
		filters       []string
		expectedNames []string
	}{
		{
			name:          "empty query returns all spaces",
			query:         "",
			expectedNames: []string{"Central Library", "The Bookworm Café", "Reading Annex"},
		},
		{
			name:          "query matches name case-insensitively",
			query:         "Library",
			expectedNames: []string{"Central Library", "Reading Annex"}, // annex matches via its address
		},
		{
			name:          "lowercase query matches the same set",
			query:         "library",
			expectedNames: []string{"Central Library", "Reading Annex"},
		},
		{
			name:          "query matching nothing returns empty",
			query:         "planetarium",
			expectedNames: []string{},
		},
		{
			name:          "filter present on every space keeps all",
			filters:       []string{"Wi-Fi"},
			expectedNames: []string{"Central Library", "The Bookworm Café", "Reading Annex"},
		},
		{
			name:          "filter is substring containment, not exact match",
			filters:       []string{"wi-fi"},
			expectedNames: []string{"Central Library", "The Bookworm Café", "Reading Annex"},
		},
		{
			name:          "filter matching nothing eliminates all spaces",
			filters:       []string{"Nonexistent"},
			expectedNames: []string{},
		},
		{
			name:          "all filters must be satisfied",
			filters:       []string{"Wi-Fi", "Café"},
			expectedNames: []string{"The Bookworm Café"},
		},
		{
			name:          "query and filters compose",
			query:         "indore",
			filters:       []string{"Café"},
			expectedNames: []string{"The Bookworm Café"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newTestStore()
			seedSearchFixtures(t, store)

			names := searchNames(t, store, tc.query, tc.filters)
			if diff := cmp.Diff(tc.expectedNames, names); diff != "" {
				t.Errorf("unexpected result set (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStore_SearchResultsAreDecorated(t *testing.T) {
	store := newTestStore()
	seedSearchFixtures(t, store)

	results, err := store.SearchStudySpaces(context.Background(), "Bookworm", nil)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Len(t, results[0].Amenities, 2)
	assert.Equal(t, 0.0, results[0].AverageRating)
	assert.Equal(t, 0, results[0].TotalReviews)
}
