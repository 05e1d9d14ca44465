package modules

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/user-directory/internal/domain/entity"
	handlers "github.com/oksasatya/user-directory/internal/interface/http"
	"github.com/oksasatya/user-directory/internal/interface/middleware"
)

// Route binds one endpoint to its handler and the roles allowed to call it.
// An empty Roles list means any caller.
type Route struct {
	Method  string
	Path    string
	Roles   []entity.Role
	Handler gin.HandlerFunc
}

// Mutating reports whether the route changes state and is rate limited.
func (r Route) Mutating() bool {
	return r.Method != http.MethodGet && r.Method != http.MethodHead
}

// UserModule exposes the directory:
// Public: GET /users, GET /users/:id
// ADMIN: POST /users, PATCH /users/:id, DELETE /users/:id
type UserModule struct {
	Handler    *handlers.UserHandler
	RoleHeader string

	Redis      *redis.Client
	RateMax    int
	RateWindow time.Duration
	RateKey    middleware.KeyFunc
	RateAllow  middleware.AllowFunc
}

func NewUserModule(h *handlers.UserHandler, roleHeader string, rdb *redis.Client, max int, window time.Duration) *UserModule {
	return &UserModule{
		Handler:    h,
		RoleHeader: roleHeader,
		Redis:      rdb,
		RateMax:    max,
		RateWindow: window,
		RateKey:    middleware.KeyByIP(),
	}
}

// RateKeyFor maps a RATE_LIMIT_KEY value to a key function; unknown values mean per IP.
func RateKeyFor(name string) middleware.KeyFunc {
	switch name {
	case "ip_path":
		return middleware.KeyByIPAndPath()
	case "identity":
		return middleware.KeyByIdentity()
	default:
		return middleware.KeyByIP()
	}
}

// Routes is the explicit table of endpoints and their required roles.
func (m *UserModule) Routes() []Route {
	admin := []entity.Role{entity.RoleAdmin}
	return []Route{
		{Method: http.MethodGet, Path: "/users", Handler: m.Handler.List},
		{Method: http.MethodGet, Path: "/users/:id", Handler: m.Handler.Get},
		{Method: http.MethodPost, Path: "/users", Roles: admin, Handler: m.Handler.Create},
		{Method: http.MethodPatch, Path: "/users/:id", Roles: admin, Handler: m.Handler.Update},
		{Method: http.MethodDelete, Path: "/users/:id", Roles: admin, Handler: m.Handler.Delete},
	}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// one shared budget per key for every mutating route
	limiter := middleware.RateLimit(m.Redis, m.RateMax, m.RateWindow, m.RateKey, m.RateAllow)

	for _, rt := range m.Routes() {
		chain := make([]gin.HandlerFunc, 0, 3)
		if len(rt.Roles) > 0 {
			chain = append(chain, middleware.RequireRoles(m.RoleHeader, rt.Roles...))
		}
		if rt.Mutating() {
			chain = append(chain, limiter)
		}
		chain = append(chain, rt.Handler)
		rg.Handle(rt.Method, rt.Path, chain...)
	}
}
