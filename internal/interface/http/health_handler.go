package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	repouser "github.com/oksasatya/user-directory/internal/domain/repository"
	"github.com/oksasatya/user-directory/pkg/apperror"
	"github.com/oksasatya/user-directory/pkg/response"
)

type healthResponse struct {
	Status string `json:"status"`
	Users  int    `json:"users"`
	Uptime string `json:"uptime"`
}

type HealthHandler struct {
	Repo    repouser.UserRepository
	started time.Time
}

func NewHealthHandler(repo repouser.UserRepository) *HealthHandler {
	return &HealthHandler{Repo: repo, started: time.Now()}
}

func (h *HealthHandler) Health(c *gin.Context) {
	response.JSON(c, http.StatusOK, healthResponse{
		Status: "ok",
		Users:  h.Repo.Count(),
		Uptime: time.Since(h.started).Round(time.Second).String(),
	})
}

// NotFound answers unmatched routes with the error envelope.
func NotFound(c *gin.Context) {
	response.Fail(c, apperror.RouteNotFound(c.Request.Method, c.Request.URL.Path))
}

// MethodNotAllowed answers a known path requested with the wrong method.
func MethodNotAllowed(c *gin.Context) {
	response.Fail(c, apperror.MethodNotAllowed(c.Request.Method, c.Request.URL.Path))
}
