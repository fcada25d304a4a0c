//go:build unit

package commands_test

import (
	"context"
	"testing"

	"studyspot/internal/domain/studyspace"
	"studyspot/internal/pkg/errs"
	"studyspot/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestStudySpaceCommands_Create(t *testing.T) {
	ctx := context.Background()

	baseRequest := func() commands.CreateStudySpaceRequest {
		return commands.CreateStudySpaceRequest{
			Name:       "Riverside Reading Room",
			Address:    "88 Riverfront, Indore",
			TotalSeats: 50,
		}
	}

	t.Run("availableSeats defaults to totalSeats", func(t *testing.T) {
		store := newTestStore()
		uc := commands.NewStudySpaceCommands(store)

		created, err := uc.Create(ctx, baseRequest())
		require.NoError(t, err)
		assert.Equal(t, 50, created.TotalSeats)
		assert.Equal(t, 50, created.AvailableSeats)
		assert.Equal(t, studyspace.DefaultImageURL, created.ImageURL)
		assert.Equal(t, studyspace.DefaultOpeningHours, created.OpeningHours)
	})

	t.Run("explicit availableSeats within bounds is kept", func(t *testing.T) {
		store := newTestStore()
		uc := commands.NewStudySpaceCommands(store)

		req := baseRequest()
		req.AvailableSeats = intPtr(12)
		created, err := uc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 12, created.AvailableSeats)
	})

	t.Run("totalSeats must be positive", func(t *testing.T) {
		store := newTestStore()
		uc := commands.NewStudySpaceCommands(store)

		for _, total := range []int{0, -5} {
			req := baseRequest()
			req.TotalSeats = total
			_, err := uc.Create(ctx, req)
			assert.ErrorIs(t, err, errs.ErrInvalidTotalSeats)
		}
	})

	t.Run("availableSeats outside bounds is rejected", func(t *testing.T) {
		store := newTestStore()
		uc := commands.NewStudySpaceCommands(store)

		for _, available := range []int{-1, 51} {
			req := baseRequest()
			req.AvailableSeats = intPtr(available)
			_, err := uc.Create(ctx, req)
			assert.ErrorIs(t, err, errs.ErrSeatsOutOfRange)
		}
	})
}

func TestStudySpaceCommands_SetAvailability(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (commands.StudySpaceCommands, int64) {
		t.Helper()
		store := newTestStore()
		uc := commands.NewStudySpaceCommands(store)
		created, err := uc.Create(ctx, commands.CreateStudySpaceRequest{
			Name:       "Riverside Reading Room",
			Address:    "88 Riverfront, Indore",
			TotalSeats: 50,
		})
		require.NoError(t, err)
		return uc, created.ID
	}

	t.Run("direct overwrite within bounds", func(t *testing.T) {
		uc, id := setup(t)

		updated, err := uc.SetAvailability(ctx, id, 7)
		require.NoError(t, err)
		assert.Equal(t, 7, updated.AvailableSeats)

		// Zero and the full capacity are both legal endpoints.
		updated, err = uc.SetAvailability(ctx, id, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, updated.AvailableSeats)

		updated, err = uc.SetAvailability(ctx, id, 50)
		require.NoError(t, err)
		assert.Equal(t, 50, updated.AvailableSeats)
	})

	t.Run("out-of-range values are rejected", func(t *testing.T) {
		uc, id := setup(t)

		for _, seats := range []int{-1, 51} {
			_, err := uc.SetAvailability(ctx, id, seats)
			assert.ErrorIs(t, err, errs.ErrSeatsOutOfRange)
		}
	})

	t.Run("unknown space", func(t *testing.T) {
		uc, _ := setup(t)

		_, err := uc.SetAvailability(ctx, 99, 10)
		assert.ErrorIs(t, err, errs.ErrStudySpaceNotFound)
	})
}
