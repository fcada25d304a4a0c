package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"studyspot/internal/handler/api"
	"studyspot/internal/handler/middleware"
	"studyspot/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	studySpaceHandler *api.StudySpaceHandler,
	amenityHandler *api.AmenityHandler,
	bookingHandler *api.BookingHandler,
	reviewHandler *api.ReviewHandler,
	authHandler *api.AuthHandler,
	adminHandler *api.AdminHandler,
	adminMiddleware *middleware.AdminMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, studySpaceHandler, amenityHandler, bookingHandler, reviewHandler, authHandler, adminHandler, adminMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	studySpaceHandler *api.StudySpaceHandler,
	amenityHandler *api.AmenityHandler,
	bookingHandler *api.BookingHandler,
	reviewHandler *api.ReviewHandler,
	authHandler *api.AuthHandler,
	adminHandler *api.AdminHandler,
	adminMiddleware *middleware.AdminMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/study-spaces", Handler: studySpaceHandler.Search},
			{Method: http.MethodGet, Path: "/study-spaces/:id", Handler: studySpaceHandler.Get},
			{Method: http.MethodGet, Path: "/amenities", Handler: amenityHandler.List},
			{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.Create},
			{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.List},
			{Method: http.MethodPost, Path: "/reviews", Handler: reviewHandler.Create},
			{Method: http.MethodGet, Path: "/reviews", Handler: reviewHandler.List},
			{Method: http.MethodPost, Path: "/auth/register", Handler: authHandler.Register},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: adminHandler.Login},
			})

			gated := admin.Group("")
			gated.Use(adminMiddleware.RequireAdmin())
			addRoutes(gated, []route{
				{Method: http.MethodPost, Path: "/study-spaces", Handler: adminHandler.CreateStudySpace},
				{Method: http.MethodPatch, Path: "/study-spaces/:id", Handler: adminHandler.UpdateAvailability},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
