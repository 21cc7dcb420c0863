package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"blueprint-api/internal/domain/user"
	"blueprint-api/internal/handler/api"
	"blueprint-api/internal/handler/middleware"
	"blueprint-api/internal/pkg/config"
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
	workbookHandler *api.WorkbookHandler,
	purchaseHandler *api.PurchaseHandler,
	emailJobHandler *api.EmailJobHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, authHandler, workbookHandler, purchaseHandler, emailJobHandler, authMiddleware)
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
	cfg config.Config,
	authHandler *api.AuthHandler,
	workbookHandler *api.WorkbookHandler,
	purchaseHandler *api.PurchaseHandler,
	emailJobHandler *api.EmailJobHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
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

		workbooks := apiGroup.Group("/workbooks")
		workbooks.Use(authMiddleware.RequireAuth())
		{
			addRoutes(workbooks, []route{
				{Method: http.MethodGet, Path: "", Handler: workbookHandler.Catalog},
				{Method: http.MethodGet, Path: "/:product", Handler: workbookHandler.GetContent},
			})
		}

		purchases := apiGroup.Group("/purchases")
		purchases.Use(authMiddleware.RequireAuth())
		{
			addRoutes(purchases, []route{
				{Method: http.MethodGet, Path: "", Handler: purchaseHandler.ListPurchases},
				{Method: http.MethodPost, Path: "/verify", Handler: purchaseHandler.VerifyPurchase},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/email-jobs/:id", Handler: emailJobHandler.GetJob},
				{Method: http.MethodGet, Path: "/users/:id/email-jobs", Handler: emailJobHandler.ListUserJobs},
				{Method: http.MethodGet, Path: "/users/:id/email-logs", Handler: emailJobHandler.ListUserLogs},
			})
		}
	}

	// Platform cron hits these; shared secret instead of JWT.
	jobs := engine.Group("/internal/jobs")
	jobs.Use(middleware.RequireCronToken(cfg.Scheduler))
	{
		addRoutes(jobs, []route{
			{Method: http.MethodPost, Path: "/drain", Handler: emailJobHandler.Drain},
			{Method: http.MethodPost, Path: "/requeue", Handler: emailJobHandler.Requeue},
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
