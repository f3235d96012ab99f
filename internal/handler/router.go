package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"mechmobile/internal/handler/api"
	"mechmobile/internal/handler/middleware"
	"mechmobile/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers wired by the router.
type Handlers struct {
	Auth         *api.AuthHandler
	Catalog      *api.CatalogHandler
	Distance     *api.DistanceHandler
	Availability *api.AvailabilityHandler
	Estimate     *api.EstimateHandler
	Payment      *api.PaymentHandler
	Booking      *api.BookingHandler
	Portal       *api.PortalHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/services", Handler: handlers.Catalog.ListServices},
			{Method: http.MethodGet, Path: "/distance", Handler: handlers.Distance.GetDistance},
			{Method: http.MethodGet, Path: "/availability", Handler: handlers.Availability.GetAvailability},
			{Method: http.MethodPost, Path: "/estimates", Handler: handlers.Estimate.CreateEstimate},
			{Method: http.MethodPost, Path: "/payments", Handler: handlers.Payment.Charge},
			{Method: http.MethodPost, Path: "/bookings", Handler: handlers.Booking.CreateBooking},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: handlers.Auth.Logout},
			})
		}

		portal := apiGroup.Group("/portal")
		portal.Use(authMiddleware.RequireAuth())
		{
			addRoutes(portal, []route{
				{Method: http.MethodGet, Path: "/quotes", Handler: handlers.Portal.ListQuotes},
				{Method: http.MethodGet, Path: "/invoices", Handler: handlers.Portal.ListInvoices},
				{Method: http.MethodGet, Path: "/appointments", Handler: handlers.Portal.ListAppointments},
				{Method: http.MethodDelete, Path: "/appointments/:id", Handler: handlers.Portal.CancelAppointment},
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
