package router

import (
	appuser "github.com/oksasatya/user-directory/internal/application"
	"github.com/oksasatya/user-directory/internal/container"
	repouser "github.com/oksasatya/user-directory/internal/domain/repository"
	"github.com/oksasatya/user-directory/internal/infrastructure/memory"
	"github.com/oksasatya/user-directory/internal/infrastructure/search"
	handlers "github.com/oksasatya/user-directory/internal/interface/http"
	"github.com/oksasatya/user-directory/internal/interface/middleware"
	"github.com/oksasatya/user-directory/internal/router/modules"
)

type UserModuleDeps struct {
	Repo    repouser.UserRepository
	Service *appuser.Service
	Handler *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	cfg := container.GetConfig()
	repo := memory.NewUserRepository()

	// optional collaborators stay untyped nil when disabled
	var indexer appuser.UserIndexer
	if es := container.GetES(); es != nil {
		indexer = search.NewUserIndexer(es, cfg.ESUsersIndex)
	}
	var events appuser.EventPublisher
	if pub := container.GetRabbitPub(); pub != nil {
		events = pub
	}

	service := appuser.NewService(
		repo,
		indexer,
		events,
		container.GetRecorder(),
		container.GetLogger(),
	)

	return UserModuleDeps{
		Repo:    repo,
		Service: service,
		Handler: handlers.NewUserHandler(service, container.GetLogger()),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	userDeps := buildUserDeps()

	users := modules.NewUserModule(
		userDeps.Handler,
		cfg.RoleHeader,
		container.GetRedis(),
		cfg.RateLimitMax,
		cfg.RateLimitWindow,
	)
	users.RateKey = modules.RateKeyFor(cfg.RateLimitKey)
	if cfg.RateLimitExemptPrivate {
		users.RateAllow = middleware.AllowPrivateIP()
	}
	r.Add(users)

	health := modules.NewHealthModule(handlers.NewHealthHandler(userDeps.Repo), nil)
	if reg := container.GetRegistry(); reg != nil {
		health.Gatherer = reg
	}
	r.Add(health)

	r.Engine.HandleMethodNotAllowed = true
	r.Engine.NoRoute(handlers.NotFound)
	r.Engine.NoMethod(handlers.MethodNotAllowed)
}
