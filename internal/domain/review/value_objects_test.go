//go:build unit

package review_test

import (
	"testing"

	"studyspot/internal/domain/review"
	"studyspot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	testCases := []struct {
		name        string
		value       int
		expectError bool
	}{
		{name: "lower bound", value: 1},
		{name: "upper bound", value: 5},
		{name: "mid range", value: 3},
		{name: "zero rejected", value: 0, expectError: true},
		{name: "above range rejected", value: 6, expectError: true},
		{name: "negative rejected", value: -1, expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rating, err := review.NewRating(tc.value)
			if tc.expectError {
				assert.ErrorIs(t, err, errs.ErrInvalidRating)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.value, rating.Value())
		})
	}
}
