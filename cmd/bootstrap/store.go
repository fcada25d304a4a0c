package bootstrap

import (
	"context"
	"log/slog"

	"studyspot/internal/infra/memstore"
	"studyspot/internal/pkg/clock"
	"studyspot/internal/usecase/commands"
	"studyspot/internal/usecase/queries"

	"go.uber.org/fx"
)

// StoreModule wires the single in-memory store instance behind the narrow
// ports each usecase depends on, and seeds the launch catalog on startup.
var StoreModule = fx.Module("store",
	fx.Provide(
		clock.NewRealClock,
		memstore.New,

		func(s *memstore.Store) commands.StudySpaceStore { return s },
		func(s *memstore.Store) commands.BookingStore { return s },
		func(s *memstore.Store) commands.ReviewStore { return s },
		func(s *memstore.Store) commands.UserStore { return s },

		func(s *memstore.Store) queries.StudySpaceReadStore { return s },
		func(s *memstore.Store) queries.AmenityReadStore { return s },
		func(s *memstore.Store) queries.BookingReadStore { return s },
		func(s *memstore.Store) queries.ReviewReadStore { return s },
	),
	fx.Invoke(seedStore),
)

// A failed seed is logged and swallowed: the process still starts with
// whatever made it into the store.
func seedStore(store *memstore.Store, logger *slog.Logger) {
	if err := store.Seed(context.Background()); err != nil {
		logger.Error("Error initializing storage", "error", err)
	}
}
