package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	handlers "github.com/oksasatya/user-directory/internal/interface/http"
	"github.com/oksasatya/user-directory/internal/metrics"
)

// HealthModule serves GET /healthz and, when a gatherer is set, GET /metrics.
type HealthModule struct {
	Handler  *handlers.HealthHandler
	Gatherer prometheus.Gatherer
}

func NewHealthModule(h *handlers.HealthHandler, gatherer prometheus.Gatherer) *HealthModule {
	return &HealthModule{Handler: h, Gatherer: gatherer}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", m.Handler.Health)
	if m.Gatherer != nil {
		rg.GET("/metrics", gin.WrapH(metrics.Handler(m.Gatherer)))
	}
}
