package components

import (
	"studyspot/internal/usecase/commands"
	"studyspot/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewReviewCommands,
		commands.NewStudySpaceCommands,
		commands.NewUserCommands,
		commands.NewAdminCommands,

		queries.NewStudySpaceQueries,
		queries.NewAmenityQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
	),
)
