package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"taller-api/internal/domain/user"
	"taller-api/internal/handler/api"
	"taller-api/internal/handler/middleware"
	"taller-api/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	appointmentHandler *api.AppointmentHandler,
	userHandler *api.UserHandler,
	repairHandler *api.RepairHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, appointmentHandler, userHandler, repairHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	appointmentHandler *api.AppointmentHandler,
	userHandler *api.UserHandler,
	repairHandler *api.RepairHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	negocioOnly := []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleNegocio)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		appointments := apiGroup.Group("/appointments")
		{
			// Listing is public so visitors can browse open slots.
			addRoutes(appointments, []route{
				{Method: http.MethodGet, Path: "", Handler: appointmentHandler.ListAppointments},
				{Method: http.MethodGet, Path: "/:id", Handler: appointmentHandler.GetAppointment},
			})

			authed := appointments.Group("")
			authed.Use(authMiddleware.RequireAuth())
			addRoutes(authed, []route{
				{Method: http.MethodPut, Path: "/reserve/:id", Handler: appointmentHandler.ReserveAppointment},
				{Method: http.MethodPost, Path: "", Handler: appointmentHandler.CreateAppointment, Mw: negocioOnly},
				{Method: http.MethodPut, Path: "/:id", Handler: appointmentHandler.UpdateAppointment, Mw: negocioOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: appointmentHandler.DeleteAppointment, Mw: negocioOnly},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodPut, Path: "/profile", Handler: userHandler.UpdateProfile},
				{Method: http.MethodPost, Path: "/change-password", Handler: userHandler.ChangePassword},
			})
		}

		plateHistory := apiGroup.Group("/plate-history")
		plateHistory.Use(authMiddleware.RequireAuth())
		{
			addRoutes(plateHistory, []route{
				{Method: http.MethodGet, Path: "", Handler: userHandler.GetPlateHistory},
			})
		}

		repairs := apiGroup.Group("/repairs")
		repairs.Use(authMiddleware.RequireAuth())
		{
			addRoutes(repairs, []route{
				{Method: http.MethodGet, Path: "/mine", Handler: repairHandler.GetMyRepairs},
				{Method: http.MethodGet, Path: "", Handler: repairHandler.ListRepairs, Mw: negocioOnly},
				{Method: http.MethodGet, Path: "/:id", Handler: repairHandler.GetRepair, Mw: negocioOnly},
				{Method: http.MethodPost, Path: "", Handler: repairHandler.CreateRepair, Mw: negocioOnly},
				{Method: http.MethodPut, Path: "/:id", Handler: repairHandler.UpdateRepair, Mw: negocioOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: repairHandler.DeleteRepair, Mw: negocioOnly},
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
