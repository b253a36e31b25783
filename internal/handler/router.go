package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seatbook/internal/handler/api"
	"seatbook/internal/handler/middleware"
	"seatbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, catalogHandler *api.CatalogHandler, bookingHandler *api.BookingHandler, adminHandler *api.AdminHandler, adminMiddleware *middleware.AdminMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, catalogHandler, bookingHandler, adminHandler, adminMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, catalogHandler *api.CatalogHandler, bookingHandler *api.BookingHandler, adminHandler *api.AdminHandler, adminMiddleware *middleware.AdminMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/courses", Handler: catalogHandler.ListCourses},
			{Method: http.MethodGet, Path: "/study-hall", Handler: catalogHandler.StudyHall},
		})

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "/course", Handler: bookingHandler.BookCourse},
				{Method: http.MethodPost, Path: "/study-hall", Handler: bookingHandler.BookStudyHall},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: adminHandler.Login},
			})

			gated := admin.Group("")
			gated.Use(adminMiddleware.RequireAdmin())
			addRoutes(gated, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: adminHandler.Logout},
				{Method: http.MethodGet, Path: "/bookings", Handler: adminHandler.ListBookings},
				{Method: http.MethodPost, Path: "/courses", Handler: adminHandler.AddCourse},
				{Method: http.MethodPost, Path: "/study-hall/resize", Handler: adminHandler.ResizeStudyHall},
				{Method: http.MethodPost, Path: "/reset", Handler: adminHandler.ResetAll},
			})
		}
	}
}

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
