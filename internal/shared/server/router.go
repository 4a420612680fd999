package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"intern-portal/internal/admin"
	"intern-portal/internal/applicants"
	"intern-portal/internal/services/health"
	"intern-portal/internal/shared/config"
	"intern-portal/internal/shared/metrics"
	"intern-portal/internal/shared/server/middleware"
	"intern-portal/internal/shared/server/respond"
)

// RouterDeps are the handlers and settings the router needs.
type RouterDeps struct {
	Config           config.Config
	Logger           *zap.Logger
	ApplicantHandler *applicants.Handler
	AdminHandler     *admin.Handler
	Health           *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		middleware.RequestID(),
		middleware.Logging(logger),
		middleware.Recovery(logger),
		metrics.Middleware(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the Internship App Backend!")
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	if deps.Health != nil {
		api.GET("/health", func(c *gin.Context) {
			status := deps.Health.Status(c.Request.Context())
			code := http.StatusOK
			if !status.OK {
				code = http.StatusServiceUnavailable
			}
			respond.JSON(c, code, status)
		})
	}
	if deps.ApplicantHandler != nil {
		deps.ApplicantHandler.RegisterRoutes(api.Group("/routes"))
	}
	if deps.AdminHandler != nil {
		deps.AdminHandler.RegisterRoutes(api.Group("/auth"))
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Message(c, http.StatusNotFound, "Not found")
	})
	r.NoMethod(func(c *gin.Context) {
		respond.Message(c, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
