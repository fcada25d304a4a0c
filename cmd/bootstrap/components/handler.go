package components

import (
	"studyspot/internal/handler"
	"studyspot/internal/handler/api"
	"studyspot/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewStudySpaceHandler,
		api.NewAmenityHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewAuthHandler,
		api.NewAdminHandler,
		middleware.NewAdminMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
