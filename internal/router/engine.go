package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/user-directory/internal/container"
	"github.com/oksasatya/user-directory/internal/interface/middleware"
)

// NewEngine builds the Gin engine with global middleware and every module,
// using the components installed in the container.
func NewEngine() *gin.Engine {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	if cfg.HTTPLogEnabled {
		r.Use(middleware.AccessLog(logger, container.GetRecorder()))
	} else if container.GetRegistry() != nil {
		// latency histogram only
		r.Use(middleware.AccessLog(nil, container.GetRecorder()))
	}

	origins := cfg.CORSOrigins()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: len(origins) == 0,
		AllowOrigins:    origins,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", cfg.RoleHeader, middleware.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(middleware.Identity(container.GetJWT(), logger))

	reg := NewRegistry(r, cfg.APIPrefix)
	InitModules(reg)
	reg.RegisterAll()
	return r
}
