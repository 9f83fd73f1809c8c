package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parking-occupancy/internal/domain/operator"
	"parking-occupancy/internal/handler/api"
	"parking-occupancy/internal/handler/middleware"
	"parking-occupancy/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Spot     *api.SpotHandler
	Session  *api.SessionHandler
	Tariff   *api.TariffHandler
	Realtime *api.RealtimeHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/ws/occupancy", h.Realtime.Occupancy)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	attendant := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(operator.RoleAttendant)}
	admin := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(operator.RoleAdmin)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// /statistics is registered before /:id; gin prefers the static segment.
		addRoutes(apiGroup.Group("/spots"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Spot.List},
			{Method: http.MethodGet, Path: "/statistics", Handler: h.Spot.Statistics},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Spot.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Spot.Create, Mw: admin},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Spot.Update, Mw: admin},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Spot.Delete, Mw: admin},
		})

		addRoutes(apiGroup.Group("/sessions"), []route{
			{Method: http.MethodGet, Path: "/active", Handler: h.Session.ListActive},
			{Method: http.MethodGet, Path: "/history", Handler: h.Session.ListHistory},
			{Method: http.MethodPost, Path: "/entry", Handler: h.Session.Entry, Mw: attendant},
			{Method: http.MethodPost, Path: "/exit", Handler: h.Session.Exit, Mw: attendant},
		})

		addRoutes(apiGroup.Group("/tariffs"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Tariff.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Tariff.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Tariff.Update, Mw: admin},
		})
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
